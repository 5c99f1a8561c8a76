package events

import (
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/calendar"
	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/SergeyKozhin/timeline-tracker/internal/timeline"
)

// All returns a copy of every event in insertion order.
func (s *Service) All() []*model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*model.Event, len(s.events))
	for i, e := range s.events {
		res[i] = e.Clone()
	}

	return res
}

func (s *Service) Get(id string) (*model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, &model.NotFoundError{ID: id}
	}

	return s.events[idx].Clone(), nil
}

// Timeline returns the filtered events ordered by deadline and classified against today.
func (s *Service) Timeline(categories []model.Category, today time.Time) []*deadline.Annotated {
	events := timeline.SortByDeadline(timeline.Filter(s.All(), categories))
	return deadline.AnnotateAll(events, today)
}

// OnDate returns the filtered events due on date.
func (s *Service) OnDate(categories []model.Category, date, today time.Time) []*deadline.Annotated {
	events := calendar.EventsOnDate(timeline.Filter(s.All(), categories), date)
	return deadline.AnnotateAll(events, today)
}

type MonthDay struct {
	Date   time.Time
	Events []*deadline.Annotated
}

// Month projects the filtered events onto the grid of ym. Leading placeholder
// days have a zero Date.
func (s *Service) Month(categories []model.Category, ym calendar.YearMonth, today time.Time) []MonthDay {
	buckets := calendar.Project(timeline.Filter(s.All(), categories), ym)

	res := make([]MonthDay, len(buckets))
	for i, b := range buckets {
		res[i] = MonthDay{
			Date:   b.Date,
			Events: deadline.AnnotateAll(b.Events, today),
		}
	}

	return res
}

func (s *Service) Counts(categories []model.Category, today time.Time) timeline.Counts {
	return timeline.CountsByCategory(timeline.Filter(s.All(), categories), today)
}
