package notifications

import (
	"context"

	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"go.uber.org/zap"
)

type Notifier interface {
	Notify(ctx context.Context, reminders []*Reminder) error
}

// LogNotifier writes reminders to the log instead of delivering them.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, reminders []*Reminder) error {
	for _, r := range reminders {
		n.logger.Infow("reminder",
			"event_id", r.Event.ID,
			"event_title", r.Event.Title,
			"category", r.Event.Category.Label(),
			"kind", r.Kind.String(),
			"remaining", deadline.FormatRemaining(r.DaysLeft),
			"methods", r.Methods,
		)
	}

	return nil
}
