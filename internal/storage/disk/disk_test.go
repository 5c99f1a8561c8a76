package disk

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []*model.Event {
	return []*model.Event{
		{
			ID:           "1",
			Title:        "JEE Main 2025 Registration",
			Institution:  "National Testing Agency",
			Description:  "Joint Entrance Examination Main for engineering admissions",
			Category:     model.CategoryExam,
			Deadline:     time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			Priority:     model.PriorityHigh,
			Progress:     60,
			Requirements: []string{"Class 12 Mark Sheet", "Photo ID"},
			Checklist: []model.ChecklistItem{
				{Task: "Fill application form", Completed: true},
				{Task: "Pay application fee"},
			},
			ApplicationURL: "https://jeemain.nta.nic.in",
		},
		{
			ID:           "2",
			Title:        "Merit Scholarship",
			Institution:  "Ministry of Education",
			Category:     model.CategoryScholarship,
			Deadline:     time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			Priority:     model.PriorityLow,
			Completed:    true,
			Requirements: []string{},
			Checklist:    []model.ChecklistItem{},
		},
	}
}

func TestEventsRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	got, err := s.GetEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	events := sampleEvents()
	require.NoError(t, s.SaveEvents(ctx, events))

	got, err = s.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, events, got)

	require.NoError(t, s.SaveEvents(ctx, got))
	again, err := s.GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestEventsPersistAcrossStores(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	require.NoError(t, New(dir).SaveEvents(ctx, sampleEvents()))

	got, err := New(dir).GetEvents(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleEvents(), got)
}

func TestEventsCorrupted(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.d.Write(eventsKey, []byte(`[{"id":"x","deadline":"soon"}]`)))

	_, err := s.GetEvents(context.Background())
	assert.Error(t, err)
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	ctx := context.Background()

	_, err := s.GetPreferences(ctx)
	assert.ErrorIs(t, err, model.ErrNoRecord)

	prefs := model.DefaultPreferences()
	prefs.Methods[model.MethodEmail] = true
	prefs.QuietHours.Enabled = true
	require.NoError(t, s.SavePreferences(ctx, prefs))

	got, err := s.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}
