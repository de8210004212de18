package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/MTahaFarrukh/PortBuilder/internal/domain/portfolio"
	"github.com/MTahaFarrukh/PortBuilder/pkg/logger"
)

const profileCacheKeyPrefix = "portfolio:profile:"

// cachedProfileRepo is a read-through Redis layer over any inner repository.
// Cache failures degrade silently to the inner repo; they never turn a
// working store into a broken one.
type cachedProfileRepo struct {
	inner  portfolio.Repository
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedProfileRepo(inner portfolio.Repository, rdb *redis.Client, ttl time.Duration, log logger.Logger) portfolio.Repository {
	return &cachedProfileRepo{inner: inner, rdb: rdb, ttl: ttl, logger: log}
}

func cacheKey(userID string) string {
	return profileCacheKeyPrefix + userID
}

func (r *cachedProfileRepo) Get(ctx context.Context, userID string) (*portfolio.UserProfile, error) {
	raw, err := r.rdb.Get(ctx, cacheKey(userID)).Bytes()
	if err == nil {
		p := portfolio.NewDefaultProfile()
		if uerr := json.Unmarshal(raw, p); uerr == nil {
			return p, nil
		}
		r.logger.Warn("Corrupt cached profile, falling through", zap.String("user_id", userID))
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Profile cache read failed", zap.String("user_id", userID), zap.Error(err))
	}

	p, err := r.inner.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.fill(ctx, userID, p)
	return p, nil
}

func (r *cachedProfileRepo) Put(ctx context.Context, userID string, p *portfolio.UserProfile) error {
	if err := r.inner.Put(ctx, userID, p); err != nil {
		return err
	}
	r.fill(ctx, userID, p)
	return nil
}

func (r *cachedProfileRepo) fill(ctx context.Context, userID string, p *portfolio.UserProfile) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, cacheKey(userID), raw, r.ttl).Err(); err != nil {
		r.logger.Warn("Profile cache write failed", zap.String("user_id", userID), zap.Error(err))
	}
}
