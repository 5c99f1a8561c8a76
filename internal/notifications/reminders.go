package notifications

import (
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

type Reminder struct {
	Event    *model.Event
	DaysLeft int
	Kind     reminderKind
	Methods  []model.Method
}

// DueReminders picks the incomplete events of enabled categories that are due
// today or exactly the configured lead time away.
func DueReminders(events []*model.Event, prefs *model.NotificationPreferences, today time.Time) []*Reminder {
	methods := prefs.EnabledMethods()

	var res []*Reminder
	for _, e := range events {
		if e.Completed || !prefs.Types[e.Category] {
			continue
		}

		days := deadline.DaysUntil(e.Deadline, today)
		if days != 0 && days != prefs.ReminderLeadDays[e.Category] {
			continue
		}

		kind, err := mapToReminderKind(days)
		if err != nil {
			continue
		}

		res = append(res, &Reminder{
			Event:    e,
			DaysLeft: days,
			Kind:     kind,
			Methods:  methods,
		})
	}

	return res
}
