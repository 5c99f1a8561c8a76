package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"go.uber.org/zap"
)

// Service holds the single notification preferences document.
type Service struct {
	logger                *zap.SugaredLogger
	preferencesRepository preferencesRepository

	mu      sync.Mutex
	current *model.NotificationPreferences
}

type preferencesRepository interface {
	GetPreferences(ctx context.Context) (*model.NotificationPreferences, error)
	SavePreferences(ctx context.Context, prefs *model.NotificationPreferences) error
}

func NewService(logger *zap.SugaredLogger, repo preferencesRepository) *Service {
	return &Service{
		logger:                logger,
		preferencesRepository: repo,
	}
}

// Get returns a copy of the current preferences, loading them on first use.
func (s *Service) Get(ctx context.Context) (*model.NotificationPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	return s.current.Clone(), nil
}

// load fills the cache once. Callers hold s.mu.
func (s *Service) load(ctx context.Context) error {
	if s.current != nil {
		return nil
	}

	prefs, err := s.preferencesRepository.GetPreferences(ctx)
	switch {
	case errors.Is(err, model.ErrNoRecord):
		s.logger.Infow("no stored preferences, using defaults")
		prefs = model.DefaultPreferences()
	case err != nil:
		return fmt.Errorf("preferencesRepository.GetPreferences: %w", err)
	}

	prefs.Normalize()
	s.current = prefs

	return nil
}

func (s *Service) Update(ctx context.Context, info *model.PreferencesUpdate) (*model.NotificationPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	next, err := merge(s.current, info)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Debugw("preferences updated")
	return next.Clone(), nil
}

// Reset restores and saves the defaults.
func (s *Service) Reset(ctx context.Context) (*model.NotificationPreferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := model.DefaultPreferences()
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Infow("preferences reset to defaults")
	return next.Clone(), nil
}

func (s *Service) commit(ctx context.Context, next *model.NotificationPreferences) error {
	if err := s.preferencesRepository.SavePreferences(ctx, next); err != nil {
		return fmt.Errorf("preferencesRepository.SavePreferences: %w", err)
	}

	s.current = next
	return nil
}
