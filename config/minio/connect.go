package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"notification-enricher/config"
	pkgMinio "notification-enricher/pkg/minio"
)

const (
	// defaultConnectTimeout is the maximum time to wait for the liveness check
	defaultConnectTimeout = 5 * time.Second
)

var (
	instance pkgMinio.Client
	mu       sync.RWMutex
)

// Connect builds the object storage client and verifies it is reachable.
// Returns the existing client if already connected.
func Connect(ctx context.Context, cfg config.MinIOConfig) (pkgMinio.Client, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := pkgMinio.New(pkgMinio.Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	if err := client.HealthCheck(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	instance = client
	return instance, nil
}

// GetClient returns the connected object storage client.
// Panics if Connect has not been called.
func GetClient() pkgMinio.Client {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("MinIO client not initialized. Call Connect() first")
	}
	return instance
}

// HealthCheck verifies the object store is still reachable.
func HealthCheck(ctx context.Context) error {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		return fmt.Errorf("MinIO client not initialized")
	}
	return instance.HealthCheck(ctx)
}
