package events

import (
	"context"
	"strings"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/SergeyKozhin/timeline-tracker/internal/pkg/validator"
)

func (s *Service) Update(ctx context.Context, id string, info *model.EventUpdate) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, &model.NotFoundError{ID: id}
	}

	event, err := applyUpdate(s.events[idx], info)
	if err != nil {
		return nil, err
	}

	if err := s.replace(ctx, idx, event); err != nil {
		return nil, err
	}

	s.logger.Debugw("event updated", "id", id)
	return event.Clone(), nil
}

// ToggleChecklistItem flips one checklist item. The checklist is rebuilt rather
// than modified so earlier snapshots keep their values.
func (s *Service) ToggleChecklistItem(ctx context.Context, id string, index int) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, &model.NotFoundError{ID: id}
	}

	old := s.events[idx]
	if index < 0 || index >= len(old.Checklist) {
		return nil, &model.ValidationError{Fields: map[string]string{
			"checklist": "checklist item does not exist",
		}}
	}

	event := old.Clone()
	event.Checklist[index] = model.ChecklistItem{
		Task:      old.Checklist[index].Task,
		Completed: !old.Checklist[index].Completed,
	}

	if err := s.replace(ctx, idx, event); err != nil {
		return nil, err
	}

	return event.Clone(), nil
}

func (s *Service) replace(ctx context.Context, idx int, event *model.Event) error {
	next := make([]*model.Event, len(s.events))
	copy(next, s.events)
	next[idx] = event

	return s.commit(ctx, next)
}

// applyUpdate merges info into a copy of old. Completion and progress are merged
// independently of each other.
func applyUpdate(old *model.Event, info *model.EventUpdate) (*model.Event, error) {
	v := validator.New()
	event := old.Clone()

	if info.Title != nil {
		title := strings.TrimSpace(*info.Title)
		v.Check(title != "", "title", "event title is required")
		event.Title = title
	}
	if info.Institution != nil {
		institution := strings.TrimSpace(*info.Institution)
		v.Check(institution != "", "institution", "institution name is required")
		event.Institution = institution
	}
	if info.Description != nil {
		event.Description = strings.TrimSpace(*info.Description)
	}
	if info.Category != nil {
		v.Check(info.Category.Valid(), "category", "unknown category")
		event.Category = *info.Category
	}
	if info.Priority != nil {
		v.Check(info.Priority.Valid(), "priority", "priority must be low, medium or high")
		event.Priority = *info.Priority
	}
	if info.Deadline != nil {
		deadline, err := model.ParseDate(*info.Deadline)
		if err != nil {
			v.AddError("deadline", "deadline must be a valid date (YYYY-MM-DD)")
		}
		event.Deadline = deadline
	}
	if info.Completed != nil {
		event.Completed = *info.Completed
	}
	if info.Progress != nil {
		v.Check(*info.Progress >= 0 && *info.Progress <= 100, "progress", "progress must be between 0 and 100")
		event.Progress = *info.Progress
	}
	if info.Requirements != nil {
		event.Requirements = append([]string{}, info.Requirements...)
	}
	if info.Checklist != nil {
		for _, item := range info.Checklist {
			v.Check(strings.TrimSpace(item.Task) != "", "checklist", "checklist task must not be empty")
		}
		event.Checklist = append([]model.ChecklistItem{}, info.Checklist...)
	}
	if info.ApplicationURL != nil {
		url := strings.TrimSpace(*info.ApplicationURL)
		v.Check(url == "" || validator.Matches(url, validator.URLRX), "application_url", "application url must be a valid http(s) link")
		event.ApplicationURL = url
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	return event, nil
}
