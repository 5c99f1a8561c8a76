package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"
)

type Sender struct {
	logger             *zap.SugaredLogger
	eventsService      eventsService
	preferencesService preferencesService
	notifier           Notifier
	now                func() time.Time

	mu      sync.Mutex
	sentDay time.Time
	sent    map[string]struct{}
}

type eventsService interface {
	All() []*model.Event
}

type preferencesService interface {
	Get(ctx context.Context) (*model.NotificationPreferences, error)
}

func NewSender(
	logger *zap.SugaredLogger,
	eventsService eventsService,
	preferencesService preferencesService,
	notifier Notifier,
	now func() time.Time,
) *Sender {
	if now == nil {
		now = time.Now
	}

	return &Sender{
		logger:             logger,
		eventsService:      eventsService,
		preferencesService: preferencesService,
		notifier:           notifier,
		now:                now,
		sent:               make(map[string]struct{}),
	}
}

// Start runs the sender on the cron schedule until the closer fires.
func (s *Sender) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := s.Run(context.Background()); err != nil {
			s.logger.Errorw("failed to send reminders", "err", err)
		}
	}); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	c.Start()
	s.logger.Infow("reminder sender started", "schedule", schedule)

	closer.Bind(func() {
		<-c.Stop().Done()
	})

	return nil
}

// Run sends the reminders due now that have not been sent yet today.
func (s *Sender) Run(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := model.Date(now)

	prefs, err := s.preferencesService.Get(ctx)
	if err != nil {
		return fmt.Errorf("preferencesService.Get: %w", err)
	}

	if prefs.QuietHours.Enabled {
		quiet, err := prefs.QuietHours.Contains(now)
		if err != nil {
			return fmt.Errorf("quiet hours: %w", err)
		}
		if quiet {
			s.logger.Debugw("quiet hours, reminders postponed", "now", now)
			return nil
		}
	}

	if len(prefs.EnabledMethods()) == 0 {
		s.logger.Debugw("no notification methods enabled")
		return nil
	}

	if !s.sentDay.Equal(today) {
		s.sentDay = today
		s.sent = make(map[string]struct{})
	}

	var pending []*Reminder
	for _, r := range DueReminders(s.eventsService.All(), prefs, today) {
		if _, ok := s.sent[r.Event.ID]; ok {
			continue
		}
		pending = append(pending, r)
	}

	if len(pending) == 0 {
		return nil
	}

	if err := s.notifier.Notify(ctx, pending); err != nil {
		return fmt.Errorf("notifier.Notify: %w", err)
	}

	for _, r := range pending {
		s.sent[r.Event.ID] = struct{}{}
	}
	s.logger.Infow("reminders sent", "count", len(pending))

	return nil
}
