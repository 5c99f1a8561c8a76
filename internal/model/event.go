package model

import (
	"strings"
	"time"
)

const DateFormat = "2006-01-02"

type Category string

const (
	CategoryAdmission   Category = "admission"
	CategoryScholarship Category = "scholarship"
	CategoryExam        Category = "exam"
	CategoryDocument    Category = "document"
	CategoryInterview   Category = "interview"
	CategoryResult      Category = "result"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryAdmission,
	CategoryScholarship,
	CategoryExam,
	CategoryDocument,
	CategoryInterview,
	CategoryResult,
}

var categoryLabels = map[Category]string{
	CategoryAdmission:   "Admission Deadline",
	CategoryScholarship: "Scholarship Application",
	CategoryExam:        "Entrance Exam",
	CategoryDocument:    "Document Submission",
	CategoryInterview:   "Interview Schedule",
	CategoryResult:      "Result Declaration",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	return categoryLabels[c]
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type ChecklistItem struct {
	Task      string `json:"task" yaml:"task"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// EventDraft is the user input for a new event.
type EventDraft struct {
	Title            string
	Institution      string
	Category         Category
	Deadline         string
	Priority         Priority
	Description      string
	Requirements     []string
	RequirementsText string
	ApplicationURL   string
}

// Event is a tracked deadline. Completed and Progress are independent: an event
// can be at 100% without being marked complete and vice versa.
type Event struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Institution    string          `json:"institution"`
	Description    string          `json:"description"`
	Category       Category        `json:"category"`
	Deadline       time.Time       `json:"deadline"`
	Priority       Priority        `json:"priority"`
	Completed      bool            `json:"completed"`
	Progress       int             `json:"progress"`
	Requirements   []string        `json:"requirements"`
	Checklist      []ChecklistItem `json:"checklist"`
	ApplicationURL string          `json:"application_url"`
}

// Clone returns a deep copy so callers never share slices with the store.
func (e *Event) Clone() *Event {
	c := *e
	if e.Requirements != nil {
		c.Requirements = make([]string, len(e.Requirements))
		copy(c.Requirements, e.Requirements)
	}
	if e.Checklist != nil {
		c.Checklist = make([]ChecklistItem, len(e.Checklist))
		copy(c.Checklist, e.Checklist)
	}
	return &c
}

// EventUpdate is a partial update. Nil fields are left untouched.
type EventUpdate struct {
	Title          *string
	Institution    *string
	Description    *string
	Category       *Category
	Deadline       *string
	Priority       *Priority
	Completed      *bool
	Progress       *int
	Requirements   []string
	Checklist      []ChecklistItem
	ApplicationURL *string
}

// Date truncates t to its wall-clock day, expressed as midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, strings.TrimSpace(s))
}

// SplitRequirements turns newline separated text into a trimmed list without blanks.
func SplitRequirements(text string) []string {
	var res []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			res = append(res, line)
		}
	}
	return res
}
