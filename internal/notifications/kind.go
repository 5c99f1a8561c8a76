package notifications

import (
	"fmt"
)

type reminderKind int

const (
	reminderKindDueToday reminderKind = iota
	reminderKind1Day
	reminderKind3Days
	reminderKindWeek
	reminderKind2Weeks
	reminderKindMonth
)

func (k reminderKind) String() string {
	switch k {
	case reminderKindDueToday:
		return "due_today"
	case reminderKind1Day:
		return "1_day"
	case reminderKind3Days:
		return "3_days"
	case reminderKindWeek:
		return "1_week"
	case reminderKind2Weeks:
		return "2_weeks"
	case reminderKindMonth:
		return "1_month"
	}
	return fmt.Sprintf("reminderKind(%d)", int(k))
}

func mapToReminderKind(daysLeft int) (reminderKind, error) {
	var val reminderKind
	switch daysLeft {
	case 0:
		val = reminderKindDueToday
	case 1:
		val = reminderKind1Day
	case 3:
		val = reminderKind3Days
	case 7:
		val = reminderKindWeek
	case 14:
		val = reminderKind2Weeks
	case 30:
		val = reminderKindMonth
	default:
		return 0, fmt.Errorf("unsupported lead time: %v days", daysLeft)
	}

	return val, nil
}
