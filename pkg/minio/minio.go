package minio

import (
	"context"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const (
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
)

// Client is the slice of object storage this service needs: liveness checks
// and object counting under a prefix.
type Client interface {
	HealthCheck(ctx context.Context) error
	CountObjects(ctx context.Context, bucket, prefix string) (int, error)
}

type implClient struct {
	minioClient *minio.Client
}

// New creates an object storage client. It does not dial; use HealthCheck to
// verify connectivity.
func New(cfg Config) (Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implClient{minioClient: client}, nil
}

func (c *implClient) HealthCheck(ctx context.Context) error {
	_, err := c.minioClient.ListBuckets(ctx)
	return err
}

func (c *implClient) CountObjects(ctx context.Context, bucket, prefix string) (int, error) {
	count := 0
	for obj := range c.minioClient.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return 0, obj.Err
		}
		count++
	}
	return count, nil
}
