package events

import (
	"context"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

func (s *Service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return &model.NotFoundError{ID: id}
	}

	next := make([]*model.Event, 0, len(s.events)-1)
	next = append(next, s.events[:idx]...)
	next = append(next, s.events[idx+1:]...)

	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.logger.Debugw("event removed", "id", id)
	return nil
}
