package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the authoritative event set. Every mutation is written through the
// repository before it becomes visible.
type Service struct {
	logger           *zap.SugaredLogger
	eventsRepository eventsRepository
	now              func() time.Time
	newID            func() string

	mu     sync.Mutex
	events []*model.Event
}

type eventsRepository interface {
	GetEvents(ctx context.Context) ([]*model.Event, error)
	SaveEvents(ctx context.Context, events []*model.Event) error
}

type Option func(*Service)

// WithClock overrides the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Service) {
		s.newID = gen
	}
}

func NewService(logger *zap.SugaredLogger, repo eventsRepository, opts ...Option) *Service {
	s := &Service{
		logger:           logger,
		eventsRepository: repo,
		now:              time.Now,
		newID:            uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Load(ctx context.Context) error {
	events, err := s.eventsRepository.GetEvents(ctx)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = events
	s.logger.Infow("events loaded", "count", len(events))

	return nil
}

// Today is the reference day used for validation and classification.
func (s *Service) Today() time.Time {
	return model.Date(s.now())
}

// commit saves next and swaps it in. Callers hold s.mu.
func (s *Service) commit(ctx context.Context, next []*model.Event) error {
	if err := s.eventsRepository.SaveEvents(ctx, next); err != nil {
		return fmt.Errorf("eventsRepository.SaveEvents: %w", err)
	}

	s.events = next
	return nil
}

func (s *Service) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) generateID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
