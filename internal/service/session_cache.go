package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-compass/internal/cache"
	"career-compass/internal/domain"
	"career-compass/internal/logger"

	"go.uber.org/zap"
)

// ErrSessionNotCached is returned when a session is not in the cache.
var ErrSessionNotCached = errors.New("session not found in cache")

// SessionCacheService caches immutable session records by id.
type SessionCacheService interface {
	Put(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
}

type sessionCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionCacheService returns a no-op implementation when cache is nil.
func NewSessionCacheService(c domain.Cache, ttl time.Duration) SessionCacheService {
	if c == nil {
		logger.Get().Warn("SessionCacheService initialized with nil cache. Service will be no-op.")
		return &noopSessionCacheService{}
	}
	return &sessionCacheServiceImpl{cache: c, ttl: ttl}
}

func (s *sessionCacheServiceImpl) Put(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return domain.NewInvalidInputError("cannot cache nil session")
	}

	key := cache.SessionKey(session.ID)
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal session for caching", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to set session to cache for key %s", key), err)
	}
	logger.Get().Debug("Cached session", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

func (s *sessionCacheServiceImpl) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	key := cache.SessionKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, ErrSessionNotCached
		}
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get session from cache for key %s", key), err)
	}
	if data == "" {
		return nil, ErrSessionNotCached
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal session from cache for key %s", key), err)
	}
	return &session, nil
}

// noopSessionCacheService is used when Redis is not configured.
type noopSessionCacheService struct{}

func (s *noopSessionCacheService) Put(ctx context.Context, session *domain.Session) error {
	return nil
}

func (s *noopSessionCacheService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	return nil, ErrSessionNotCached
}
