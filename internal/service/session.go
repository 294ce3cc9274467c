package service

import (
	"context"
	"errors"

	"career-compass/internal/domain"
	"career-compass/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SessionService stores and reads exploration sessions. Reads go through
// the session cache; concurrent misses for one id share a single load.
type SessionService interface {
	Save(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error)
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
}

type sessionService struct {
	repo  domain.SessionRepository
	cache SessionCacheService
	group singleflight.Group
}

func NewSessionService(repo domain.SessionRepository, cache SessionCacheService) SessionService {
	if cache == nil {
		cache = &noopSessionCacheService{}
	}
	return &sessionService{repo: repo, cache: cache}
}

func (s *sessionService) Save(ctx context.Context, draft domain.SessionDraft) (*domain.Session, error) {
	session, err := s.repo.Create(ctx, draft)
	if err != nil {
		logger.Get().Error("Failed to save session", zap.Error(err))
		return nil, domain.NewStorageError("Failed to save session", err)
	}

	if err := s.cache.Put(ctx, session); err != nil {
		logger.Get().Warn("Failed to cache new session", zap.String("session_id", session.ID), zap.Error(err))
	}
	logger.Get().Info("Session saved",
		zap.String("session_id", session.ID),
		zap.Int("areas", len(session.SelectedAreas)),
		zap.Int("answers", len(session.Answers)))
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	cached, err := s.cache.Get(ctx, sessionID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrSessionNotCached) {
		logger.Get().Warn("Session cache read failed, falling back to store", zap.String("session_id", sessionID), zap.Error(err))
	}

	// The load is shared by every waiter, so one caller going away must not
	// cancel it for the rest.
	loadCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(sessionID, func() (interface{}, error) {
		session, err := s.repo.GetByID(loadCtx, sessionID)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Put(loadCtx, session); err != nil {
			logger.Get().Warn("Failed to cache session", zap.String("session_id", sessionID), zap.Error(err))
		}
		return session, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Session load shared", zap.String("session_id", sessionID))
	}
	return v.(*domain.Session), nil
}

func (s *sessionService) List(ctx context.Context) ([]*domain.Session, error) {
	sessions, err := s.repo.List(ctx)
	if err != nil {
		logger.Get().Error("Failed to list sessions", zap.Error(err))
		return nil, err
	}
	return sessions, nil
}
