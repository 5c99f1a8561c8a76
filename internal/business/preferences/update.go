package preferences

import (
	"fmt"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/SergeyKozhin/timeline-tracker/internal/pkg/validator"
)

// merge applies info key by key on top of a copy of old.
func merge(old *model.NotificationPreferences, info *model.PreferencesUpdate) (*model.NotificationPreferences, error) {
	v := validator.New()
	next := old.Clone()

	for c, enabled := range info.Types {
		if !c.Valid() {
			v.AddError(fmt.Sprintf("types.%s", c), "unknown category")
			continue
		}
		next.Types[c] = enabled
	}

	for m, enabled := range info.Methods {
		if !m.Valid() {
			v.AddError(fmt.Sprintf("methods.%s", m), "unknown notification method")
			continue
		}
		next.Methods[m] = enabled
	}

	for c, days := range info.ReminderLeadDays {
		key := fmt.Sprintf("reminder_lead_days.%s", c)
		if !c.Valid() {
			v.AddError(key, "unknown category")
			continue
		}
		if !model.ValidLeadDays(days) {
			v.AddError(key, "must be one of 1, 3, 7, 14 or 30 days")
			continue
		}
		next.ReminderLeadDays[c] = days
	}

	if q := info.QuietHours; q != nil {
		if q.Enabled != nil {
			next.QuietHours.Enabled = *q.Enabled
		}
		if q.Start != nil {
			v.Check(validClock(*q.Start), "quiet_hours.start", "must be a time of day as HH:MM")
			next.QuietHours.Start = *q.Start
		}
		if q.End != nil {
			v.Check(validClock(*q.End), "quiet_hours.end", "must be a time of day as HH:MM")
			next.QuietHours.End = *q.End
		}
	}

	if err := v.Err(); err != nil {
		return nil, err
	}

	return next, nil
}

func validClock(s string) bool {
	return validator.Matches(s, validator.ClockRX) && model.ValidClock(s)
}
