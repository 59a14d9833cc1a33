package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation backed by the
// given repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists one activity entry. Called from dispatcher workers; a
// failure here is logged and swallowed upstream; recording never fails the
// user action that produced the entry.
func (s *activityService) Process(ctx context.Context, a domain.Activity) error {
	if err := s.repo.Append(ctx, a); err != nil {
		return err
	}
	s.log.Debug().
		Str("kind", string(a.Kind)).
		Str("username", a.Username).
		Msg("activity recorded")
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *activityService) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.Recent(ctx, limit)
}
