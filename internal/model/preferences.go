package model

import (
	"fmt"
	"time"
)

type Method string

const (
	MethodPush  Method = "push"
	MethodEmail Method = "email"
	MethodSMS   Method = "sms"
)

var Methods = []Method{MethodPush, MethodEmail, MethodSMS}

func (m Method) Valid() bool {
	switch m {
	case MethodPush, MethodEmail, MethodSMS:
		return true
	}
	return false
}

// LeadDayOptions are the only reminder lead times a category can use.
var LeadDayOptions = []int{1, 3, 7, 14, 30}

func ValidLeadDays(days int) bool {
	for _, d := range LeadDayOptions {
		if d == days {
			return true
		}
	}
	return false
}

const ClockFormat = "15:04"

type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Contains reports whether the wall-clock time of t falls inside the window.
// Start is inclusive, end exclusive; a window with start after end wraps midnight.
func (q QuietHours) Contains(t time.Time) (bool, error) {
	start, err := parseClock(q.Start)
	if err != nil {
		return false, err
	}
	end, err := parseClock(q.End)
	if err != nil {
		return false, err
	}

	now := t.Hour()*60 + t.Minute()
	switch {
	case start == end:
		return false, nil
	case start < end:
		return now >= start && now < end, nil
	default:
		return now >= start || now < end, nil
	}
}

func ValidClock(s string) bool {
	_, err := parseClock(s)
	return err == nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

type NotificationPreferences struct {
	Types            map[Category]bool `json:"types"`
	Methods          map[Method]bool   `json:"methods"`
	ReminderLeadDays map[Category]int  `json:"reminder_lead_days"`
	QuietHours       QuietHours        `json:"quiet_hours"`
}

type QuietHoursUpdate struct {
	Enabled *bool
	Start   *string
	End     *string
}

// PreferencesUpdate is merged key by key into the current preferences.
type PreferencesUpdate struct {
	Types            map[Category]bool
	Methods          map[Method]bool
	ReminderLeadDays map[Category]int
	QuietHours       *QuietHoursUpdate
}

var defaultPreferences = NotificationPreferences{
	Types: map[Category]bool{
		CategoryAdmission:   true,
		CategoryScholarship: true,
		CategoryExam:        true,
		CategoryDocument:    false,
		CategoryInterview:   true,
		CategoryResult:      true,
	},
	Methods: map[Method]bool{
		MethodPush:  true,
		MethodEmail: false,
		MethodSMS:   false,
	},
	ReminderLeadDays: map[Category]int{
		CategoryAdmission:   7,
		CategoryScholarship: 14,
		CategoryExam:        3,
		CategoryDocument:    1,
		CategoryInterview:   1,
		CategoryResult:      1,
	},
	QuietHours: QuietHours{
		Enabled: false,
		Start:   "22:00",
		End:     "08:00",
	},
}

// DefaultPreferences returns a fresh copy of the built-in defaults.
func DefaultPreferences() *NotificationPreferences {
	return defaultPreferences.Clone()
}

func (p *NotificationPreferences) Clone() *NotificationPreferences {
	c := &NotificationPreferences{
		Types:            make(map[Category]bool, len(p.Types)),
		Methods:          make(map[Method]bool, len(p.Methods)),
		ReminderLeadDays: make(map[Category]int, len(p.ReminderLeadDays)),
		QuietHours:       p.QuietHours,
	}
	for k, v := range p.Types {
		c.Types[k] = v
	}
	for k, v := range p.Methods {
		c.Methods[k] = v
	}
	for k, v := range p.ReminderLeadDays {
		c.ReminderLeadDays[k] = v
	}
	return c
}

// Normalize fills every missing category and method from the defaults.
func (p *NotificationPreferences) Normalize() {
	if p.Types == nil {
		p.Types = make(map[Category]bool, len(Categories))
	}
	if p.Methods == nil {
		p.Methods = make(map[Method]bool, len(Methods))
	}
	if p.ReminderLeadDays == nil {
		p.ReminderLeadDays = make(map[Category]int, len(Categories))
	}

	for _, c := range Categories {
		if _, ok := p.Types[c]; !ok {
			p.Types[c] = defaultPreferences.Types[c]
		}
		if _, ok := p.ReminderLeadDays[c]; !ok {
			p.ReminderLeadDays[c] = defaultPreferences.ReminderLeadDays[c]
		}
	}
	for _, m := range Methods {
		if _, ok := p.Methods[m]; !ok {
			p.Methods[m] = defaultPreferences.Methods[m]
		}
	}

	if p.QuietHours.Start == "" {
		p.QuietHours.Start = defaultPreferences.QuietHours.Start
	}
	if p.QuietHours.End == "" {
		p.QuietHours.End = defaultPreferences.QuietHours.End
	}
}

// EnabledMethods returns the enabled delivery methods in canonical order.
func (p *NotificationPreferences) EnabledMethods() []Method {
	var res []Method
	for _, m := range Methods {
		if p.Methods[m] {
			res = append(res, m)
		}
	}
	return res
}
