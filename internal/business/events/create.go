package events

import (
	"context"
	"strings"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/SergeyKozhin/timeline-tracker/internal/pkg/validator"
)

// ValidateDraft checks the user input for a new event against the reference day
// and returns the normalized event without an ID.
func ValidateDraft(draft *model.EventDraft, today time.Time) (*model.Event, error) {
	v := validator.New()

	title := strings.TrimSpace(draft.Title)
	institution := strings.TrimSpace(draft.Institution)

	v.Check(title != "", "title", "event title is required")
	v.Check(institution != "", "institution", "institution name is required")

	if draft.Category == "" {
		v.AddError("category", "please select a category")
	} else {
		v.Check(draft.Category.Valid(), "category", "unknown category")
	}

	priority := draft.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	v.Check(priority.Valid(), "priority", "priority must be low, medium or high")

	var deadline time.Time
	if strings.TrimSpace(draft.Deadline) == "" {
		v.AddError("deadline", "deadline date is required")
	} else {
		var err error
		deadline, err = model.ParseDate(draft.Deadline)
		if err != nil {
			v.AddError("deadline", "deadline must be a valid date (YYYY-MM-DD)")
		} else {
			v.Check(!deadline.Before(model.Date(today)), "deadline", "deadline cannot be in the past")
		}
	}

	applicationURL := strings.TrimSpace(draft.ApplicationURL)
	v.Check(applicationURL == "" || validator.Matches(applicationURL, validator.URLRX), "application_url", "application url must be a valid http(s) link")

	if err := v.Err(); err != nil {
		return nil, err
	}

	requirements := draft.Requirements
	if len(requirements) == 0 && draft.RequirementsText != "" {
		requirements = model.SplitRequirements(draft.RequirementsText)
	}
	if requirements == nil {
		requirements = []string{}
	}

	return &model.Event{
		Title:          title,
		Institution:    institution,
		Description:    strings.TrimSpace(draft.Description),
		Category:       draft.Category,
		Deadline:       deadline,
		Priority:       priority,
		Completed:      false,
		Progress:       0,
		Requirements:   requirements,
		Checklist:      []model.ChecklistItem{},
		ApplicationURL: applicationURL,
	}, nil
}

func (s *Service) Add(ctx context.Context, draft *model.EventDraft) (*model.Event, error) {
	event, err := ValidateDraft(draft, s.Today())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event.ID = s.generateID()

	next := make([]*model.Event, len(s.events), len(s.events)+1)
	copy(next, s.events)
	next = append(next, event)

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Debugw("event added", "id", event.ID, "category", event.Category)
	return event.Clone(), nil
}

// validateStored checks the structural invariants of an event coming from outside
// the add flow (seed files, imports). Past deadlines are allowed here.
func validateStored(v *validator.Validator, e *model.Event) {
	v.Check(strings.TrimSpace(e.Title) != "", "title", "event title is required")
	v.Check(strings.TrimSpace(e.Institution) != "", "institution", "institution name is required")
	v.Check(e.Category.Valid(), "category", "unknown category")
	v.Check(e.Priority.Valid(), "priority", "priority must be low, medium or high")
	v.Check(!e.Deadline.IsZero(), "deadline", "deadline date is required")
	v.Check(e.Progress >= 0 && e.Progress <= 100, "progress", "progress must be between 0 and 100")
	v.Check(e.ApplicationURL == "" || validator.Matches(e.ApplicationURL, validator.URLRX), "application_url", "application url must be a valid http(s) link")
}

// Import appends already shaped events, keeping their IDs when present and unique.
func (s *Service) Import(ctx context.Context, events []*model.Event) ([]*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]*model.Event, len(s.events), len(s.events)+len(events))
	copy(next, s.events)

	seen := make(map[string]struct{}, len(next)+len(events))
	for _, e := range next {
		seen[e.ID] = struct{}{}
	}

	imported := make([]*model.Event, 0, len(events))
	for _, e := range events {
		v := validator.New()
		validateStored(v, e)
		if err := v.Err(); err != nil {
			return nil, err
		}

		c := e.Clone()
		c.Deadline = model.Date(c.Deadline)
		if _, dup := seen[c.ID]; c.ID == "" || dup {
			for {
				c.ID = s.newID()
				if _, dup := seen[c.ID]; !dup {
					break
				}
			}
		}
		seen[c.ID] = struct{}{}

		next = append(next, c)
		imported = append(imported, c.Clone())
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	s.logger.Infow("events imported", "count", len(imported))
	return imported, nil
}
