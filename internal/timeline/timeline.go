package timeline

import (
	"sort"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

// Filter keeps the events whose category is selected. An empty selection is an
// unrestricted view, not an empty one.
func Filter(events []*model.Event, categories []model.Category) []*model.Event {
	if len(categories) == 0 {
		return unrestricted(events)
	}

	selected := make(map[model.Category]struct{}, len(categories))
	for _, c := range categories {
		selected[c] = struct{}{}
	}

	res := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if _, ok := selected[e.Category]; ok {
			res = append(res, e)
		}
	}

	return res
}

func unrestricted(events []*model.Event) []*model.Event {
	return append([]*model.Event(nil), events...)
}

// SortByDeadline returns a copy ordered by deadline; equal deadlines keep input order.
func SortByDeadline(events []*model.Event) []*model.Event {
	res := append([]*model.Event(nil), events...)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Deadline.Before(res[j].Deadline)
	})
	return res
}

type Counts struct {
	Categories map[model.Category]int `json:"categories"`
	Completed  int                    `json:"completed"`
	Overdue    int                    `json:"overdue"`
	Urgent     int                    `json:"urgent"`
}

// CountsByCategory tallies events per category. Completed events count towards
// Completed only; incomplete ones may count as Overdue or Urgent.
func CountsByCategory(events []*model.Event, today time.Time) Counts {
	res := Counts{Categories: make(map[model.Category]int, len(model.Categories))}
	for _, c := range model.Categories {
		res.Categories[c] = 0
	}

	for _, e := range events {
		res.Categories[e.Category]++

		if e.Completed {
			res.Completed++
			continue
		}

		switch deadline.Classify(deadline.DaysUntil(e.Deadline, today)) {
		case deadline.UrgencyOverdue:
			res.Overdue++
		case deadline.UrgencyUrgent:
			res.Urgent++
		}
	}

	return res
}
