package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/friendsofgo/errors"

	"notification-enricher/internal/directory/repository"
	pkgLog "notification-enricher/pkg/log"
)

const (
	defaultRequestTimeout = 5 * time.Second
	defaultRetryCount     = 2
	defaultRetryDelay     = 200 * time.Millisecond
)

// Config for one remote directory endpoint.
type Config struct {
	// BaseURL of the directory service, e.g. "http://connectors.internal".
	BaseURL string
	// Path of the bulk name-lookup endpoint, e.g. "/v1/connections/names".
	Path string
	// RetryCount is the number of retries after the first attempt.
	RetryCount int
	// RetryDelay between attempts.
	RetryDelay time.Duration
}

// implRepository calls a remote directory service over its bulk lookup
// endpoint.
type implRepository struct {
	l      pkgLog.Logger
	cfg    Config
	client *http.Client
}

var _ repository.Repository = &implRepository{}

// New creates an HTTP-backed directory repository.
func New(l pkgLog.Logger, cfg Config) *implRepository {
	if cfg.RetryCount <= 0 {
		cfg.RetryCount = defaultRetryCount
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	return &implRepository{
		l:      l,
		cfg:    cfg,
		client: &http.Client{Timeout: defaultRequestTimeout},
	}
}

type lookupRequest struct {
	IDs []string `json:"ids"`
}

type lookupResponse struct {
	Names map[string]string `json:"names"`
}

func (r *implRepository) LookupNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var lastErr error
	for attempt := 0; attempt <= r.cfg.RetryCount; attempt++ {
		if attempt > 0 {
			r.l.Infof(ctx, "internal.directory.repository.httpapi.LookupNames: retrying attempt %d/%d", attempt, r.cfg.RetryCount)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.cfg.RetryDelay):
			}
		}

		names, err := r.lookup(ctx, ids)
		if err == nil {
			return names, nil
		}
		lastErr = err
		r.l.Warnf(ctx, "internal.directory.repository.httpapi.LookupNames: attempt %d failed: %v", attempt+1, err)
	}

	return nil, errors.Wrapf(lastErr, "lookup failed after %d attempts", r.cfg.RetryCount+1)
}

func (r *implRepository) lookup(ctx context.Context, ids []string) (map[string]string, error) {
	body, err := json.Marshal(lookupRequest{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "marshal lookup request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+r.cfg.Path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build lookup request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send lookup request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, errors.Errorf("directory returned status %d", resp.StatusCode)
	}

	var out lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "decode lookup response")
	}
	if out.Names == nil {
		out.Names = map[string]string{}
	}

	return out.Names, nil
}
