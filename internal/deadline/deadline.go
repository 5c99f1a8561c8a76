// Package deadline classifies events by how close their deadline is to a
// reference day. Nothing here reads the system clock; callers pass "today".
package deadline

import (
	"fmt"
	"math"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyUrgent  Urgency = "urgent"
	UrgencyNormal  Urgency = "normal"
)

const UrgentWindowDays = 7

const day = 24 * time.Hour

// DaysUntil returns the number of whole days from today to the deadline,
// negative when the deadline has passed.
func DaysUntil(deadline, today time.Time) int {
	diff := model.Date(deadline).Sub(model.Date(today))
	return int(math.Ceil(float64(diff) / float64(day)))
}

func Classify(daysUntil int) Urgency {
	switch {
	case daysUntil < 0:
		return UrgencyOverdue
	case daysUntil <= UrgentWindowDays:
		return UrgencyUrgent
	default:
		return UrgencyNormal
	}
}

func FormatRemaining(daysUntil int) string {
	switch {
	case daysUntil < 0:
		return fmt.Sprintf("%d days overdue", -daysUntil)
	case daysUntil == 0:
		return "Due today"
	default:
		return fmt.Sprintf("%d days left", daysUntil)
	}
}

type ChecklistProgress struct {
	Done  int     `json:"done"`
	Total int     `json:"total"`
	Ratio float64 `json:"ratio"`
}

func Checklist(items []model.ChecklistItem) ChecklistProgress {
	res := ChecklistProgress{Total: len(items)}
	for _, item := range items {
		if item.Completed {
			res.Done++
		}
	}
	if res.Total > 0 {
		res.Ratio = float64(res.Done) / float64(res.Total)
	}
	return res
}

// Annotated is an event together with its classification against a reference day.
type Annotated struct {
	*model.Event
	DaysLeft  int
	Urgency   Urgency
	Remaining string
	Checklist ChecklistProgress
}

func Annotate(e *model.Event, today time.Time) *Annotated {
	days := DaysUntil(e.Deadline, today)
	return &Annotated{
		Event:     e,
		DaysLeft:  days,
		Urgency:   Classify(days),
		Remaining: FormatRemaining(days),
		Checklist: Checklist(e.Checklist),
	}
}

func AnnotateAll(events []*model.Event, today time.Time) []*Annotated {
	res := make([]*Annotated, len(events))
	for i, e := range events {
		res[i] = Annotate(e, today)
	}
	return res
}
