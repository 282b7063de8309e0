package redicache

import (
	"context"
	"fmt"
	"time"

	"notification-enricher/internal/directory/repository"
	pkgLog "notification-enricher/pkg/log"
	pkgRedis "notification-enricher/pkg/redis"
)

// implRepository is a read-through cache over another directory repository.
// Only successful resolutions are cached; a failed or missing lookup is
// retried against the backing directory on the next call.
type implRepository struct {
	l      pkgLog.Logger
	next   repository.Repository
	redis  pkgRedis.IRedis
	prefix string
	ttl    time.Duration
}

var _ repository.Repository = &implRepository{}

// New wraps next with a redis cache. The prefix keys one directory kind so
// user and account entries never collide.
func New(l pkgLog.Logger, next repository.Repository, redis pkgRedis.IRedis, prefix string, ttl time.Duration) *implRepository {
	return &implRepository{
		l:      l,
		next:   next,
		redis:  redis,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *implRepository) LookupNames(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	names := make(map[string]string, len(ids))
	misses := ids

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}

	vals, err := r.redis.MGet(ctx, keys...)
	if err != nil {
		r.l.Warnf(ctx, "internal.directory.repository.redicache.LookupNames.MGet: %v", err)
	} else {
		misses = misses[:0:0]
		for i, v := range vals {
			if s, ok := v.(string); ok && s != "" {
				names[ids[i]] = s
				continue
			}
			misses = append(misses, ids[i])
		}
	}

	if len(misses) == 0 {
		return names, nil
	}

	fresh, err := r.next.LookupNames(ctx, misses)
	if err != nil {
		// Partial result: whatever the cache had is still usable for
		// labels; the error tells the caller the directory was unreachable.
		return names, err
	}

	for id, name := range fresh {
		names[id] = name
		if setErr := r.redis.Set(ctx, r.key(id), name, r.ttl); setErr != nil {
			r.l.Debugf(ctx, "internal.directory.repository.redicache.LookupNames.Set: %v", setErr)
		}
	}

	return names, nil
}

func (r *implRepository) key(id string) string {
	return fmt.Sprintf("directory:%s:%s", r.prefix, id)
}
