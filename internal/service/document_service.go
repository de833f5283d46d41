package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hedgeapi/internal/bus"
	"hedgeapi/internal/cache"
	"hedgeapi/internal/metrics"
	"hedgeapi/internal/models"
	"hedgeapi/internal/repository"
)

const (
	defaultOpTimeout      = 5 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
	publishTimeout        = 2 * time.Second
)

// DocumentService is the generic create/list path shared by every entity.
// Repo is nil when no store is configured.
type DocumentService struct {
	Repo      repository.Repository
	Logger    *zap.Logger
	Timeout   time.Duration
	Cache     cache.Store
	CacheTTL  time.Duration
	Publisher bus.Publisher
}

type CreateOptions struct {
	// IdempotencyKey, when set, makes a retried create return the id of the
	// first successful write instead of inserting again.
	IdempotencyKey string
	// Publish emits a bus event after the record is persisted.
	Publish bool
}

type CreateResult struct {
	ID       string
	Replayed bool
}

// Create validates record and inserts it into collection.
func (s *DocumentService) Create(ctx context.Context, collection string, record any, opts CreateOptions) (CreateResult, error) {
	if err := models.Validate(record); err != nil {
		metrics.CreateFailures.WithLabelValues(collection, "validation").Inc()
		return CreateResult{}, err
	}
	if s == nil || s.Repo == nil {
		metrics.CreateFailures.WithLabelValues(collection, "unavailable").Inc()
		return CreateResult{}, repository.ErrStorageUnavailable
	}

	cacheKey := ""
	if opts.IdempotencyKey != "" {
		cacheKey = collection + ":" + opts.IdempotencyKey
		if id, ok := s.lookupKey(ctx, cacheKey); ok {
			metrics.IdempotentReplays.WithLabelValues(collection).Inc()
			return CreateResult{ID: id, Replayed: true}, nil
		}
	}

	opCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	id, err := s.Repo.Insert(opCtx, collection, record)
	if err != nil {
		err = repository.Wrap("insert", collection, err, false)
		reason := "storage"
		if repository.IsUnavailable(err) {
			reason = "unavailable"
		}
		metrics.CreateFailures.WithLabelValues(collection, reason).Inc()
		s.log().Warn("create failed",
			zap.String("collection", collection),
			zap.Error(err),
		)
		return CreateResult{}, err
	}
	metrics.RecordsCreated.WithLabelValues(collection).Inc()

	if cacheKey != "" {
		s.storeKey(ctx, cacheKey, id)
	}
	if opts.Publish {
		s.publish(ctx, collection, id, record)
	}
	return CreateResult{ID: id}, nil
}

// ListRecords reads up to limit records of collection. An unconfigured or
// unreachable store yields an empty slice and no error.
func ListRecords[T any](ctx context.Context, s *DocumentService, collection string, filter repository.Filter, limit int64) ([]T, error) {
	items := make([]T, 0)
	if s == nil || s.Repo == nil {
		metrics.DegradedLists.WithLabelValues(collection).Inc()
		return items, nil
	}
	opCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()
	if err := s.Repo.Find(opCtx, collection, filter, limit, &items); err != nil {
		err = repository.Wrap("find", collection, err, false)
		if repository.IsUnavailable(err) {
			metrics.DegradedLists.WithLabelValues(collection).Inc()
			s.log().Warn("list degraded",
				zap.String("collection", collection),
				zap.Error(err),
			)
			return make([]T, 0), nil
		}
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items, nil
}

func (s *DocumentService) lookupKey(ctx context.Context, key string) (string, bool) {
	if s.Cache == nil {
		return "", false
	}
	raw, found, err := s.Cache.Get(ctx, key)
	if err != nil {
		s.log().Warn("idempotency lookup failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	if !found || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

func (s *DocumentService) storeKey(ctx context.Context, key, id string) {
	if s.Cache == nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	if err := s.Cache.Set(ctx, key, []byte(id), ttl); err != nil {
		s.log().Warn("idempotency store failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *DocumentService) publish(ctx context.Context, collection, id string, record any) {
	if s.Publisher == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	err := s.Publisher.Publish(pubCtx, bus.Event{
		Collection:  collection,
		ID:          id,
		Record:      record,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		s.log().Warn("publish failed",
			zap.String("collection", collection),
			zap.String("id", id),
			zap.Error(err),
		)
	}
}

func (s *DocumentService) timeout() time.Duration {
	if s.Timeout <= 0 {
		return defaultOpTimeout
	}
	return s.Timeout
}

func (s *DocumentService) log() *zap.Logger {
	if s == nil || s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
