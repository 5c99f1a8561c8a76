package events

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/calendar"
	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRepository struct {
	stored  []*model.Event
	saves   int
	saveErr error
}

func (r *fakeRepository) GetEvents(context.Context) ([]*model.Event, error) {
	res := make([]*model.Event, len(r.stored))
	for i, e := range r.stored {
		res[i] = e.Clone()
	}
	return res, nil
}

func (r *fakeRepository) SaveEvents(_ context.Context, events []*model.Event) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.stored = make([]*model.Event, len(events))
	for i, e := range events {
		r.stored[i] = e.Clone()
	}
	return nil
}

var today = time.Date(2025, time.January, 10, 14, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, repo *fakeRepository) *Service {
	t.Helper()

	n := 0
	s := NewService(zaptest.NewLogger(t).Sugar(), repo,
		WithClock(func() time.Time { return today }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
	require.NoError(t, s.Load(context.Background()))

	return s
}

func validDraft(title string, category model.Category, deadline string) *model.EventDraft {
	return &model.EventDraft{
		Title:       title,
		Institution: "National Testing Agency",
		Category:    category,
		Deadline:    deadline,
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()

	var vErr *model.ValidationError
	require.True(t, errors.As(err, &vErr), "expected validation error, got %v", err)
	return vErr.Fields
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	repo := &fakeRepository{}
	s := newTestService(t, repo)
	ctx := context.Background()

	seen := map[string]struct{}{}
	for i := 0; i < 10; i++ {
		e, err := s.Add(ctx, validDraft(fmt.Sprintf("event %d", i), model.CategoryExam, "2025-02-01"))
		require.NoError(t, err)
		_, dup := seen[e.ID]
		assert.False(t, dup)
		seen[e.ID] = struct{}{}
	}

	assert.Len(t, s.All(), 10)
	assert.Equal(t, 10, repo.saves)
}

func TestAddRegeneratesCollidingID(t *testing.T) {
	repo := &fakeRepository{stored: []*model.Event{{ID: "dup", Title: "x", Category: model.CategoryExam}}}
	ids := []string{"dup", "dup", "fresh"}
	s := NewService(zaptest.NewLogger(t).Sugar(), repo,
		WithClock(func() time.Time { return today }),
		WithIDGenerator(func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}),
	)
	require.NoError(t, s.Load(context.Background()))

	e, err := s.Add(context.Background(), validDraft("JEE", model.CategoryExam, "2025-01-15"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", e.ID)
}

func TestAddNormalizesDraft(t *testing.T) {
	s := newTestService(t, &fakeRepository{})

	e, err := s.Add(context.Background(), &model.EventDraft{
		Title:            "  Delhi University Admission ",
		Institution:      " University of Delhi",
		Category:         model.CategoryAdmission,
		Deadline:         "2025-01-10",
		RequirementsText: "12th Mark Sheet\n\n  Character Certificate  \n",
	})
	require.NoError(t, err)

	assert.Equal(t, "Delhi University Admission", e.Title)
	assert.Equal(t, "University of Delhi", e.Institution)
	assert.Equal(t, model.PriorityMedium, e.Priority)
	assert.Equal(t, time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), e.Deadline)
	assert.Equal(t, []string{"12th Mark Sheet", "Character Certificate"}, e.Requirements)
	assert.False(t, e.Completed)
	assert.Zero(t, e.Progress)
	assert.Empty(t, e.Checklist)
}

func TestAddValidation(t *testing.T) {
	s := newTestService(t, &fakeRepository{})
	ctx := context.Background()

	_, err := s.Add(ctx, &model.EventDraft{Title: "", Institution: "X", Category: model.CategoryExam, Deadline: "2099-01-01"})
	fields := validationFields(t, err)
	assert.Contains(t, fields, "title")
	assert.Len(t, fields, 1)

	_, err = s.Add(ctx, &model.EventDraft{Title: "   "})
	fields = validationFields(t, err)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "institution")
	assert.Contains(t, fields, "category")
	assert.Contains(t, fields, "deadline")

	_, err = s.Add(ctx, validDraft("Past", model.CategoryExam, "2025-01-09"))
	assert.Equal(t, "deadline cannot be in the past", validationFields(t, err)["deadline"])

	_, err = s.Add(ctx, validDraft("Bad date", model.CategoryExam, "2025-02-30"))
	assert.Contains(t, validationFields(t, err), "deadline")

	_, err = s.Add(ctx, validDraft("Bad category", model.Category("party"), "2025-02-01"))
	assert.Contains(t, validationFields(t, err), "category")

	draft := validDraft("Bad priority", model.CategoryExam, "2025-02-01")
	draft.Priority = "urgent"
	_, err = s.Add(ctx, draft)
	assert.Contains(t, validationFields(t, err), "priority")

	draft = validDraft("Bad link", model.CategoryExam, "2025-02-01")
	draft.ApplicationURL = "jeemain.nta.nic.in"
	_, err = s.Add(ctx, draft)
	assert.Contains(t, validationFields(t, err), "application_url")

	assert.Empty(t, s.All())
}

func TestAddFailedSaveLeavesStoreUnchanged(t *testing.T) {
	repo := &fakeRepository{}
	s := newTestService(t, repo)
	ctx := context.Background()

	_, err := s.Add(ctx, validDraft("first", model.CategoryExam, "2025-02-01"))
	require.NoError(t, err)

	repo.saveErr = errors.New("disk full")
	_, err = s.Add(ctx, validDraft("second", model.CategoryExam, "2025-02-01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.saveErr)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "first", all[0].Title)
}

func TestUpdateMergesFields(t *testing.T) {
	s := newTestService(t, &fakeRepository{})
	ctx := context.Background()

	e, err := s.Add(ctx, validDraft("NEET UG", model.CategoryExam, "2025-01-20"))
	require.NoError(t, err)

	progress := 100
	updated, err := s.Update(ctx, e.ID, &model.EventUpdate{
		Progress:  &progress,
		Checklist: []model.ChecklistItem{{Task: "Create account", Completed: true}},
	})
	require.NoError(t, err)

	assert.Equal(t, 100, updated.Progress)
	assert.False(t, updated.Completed, "progress does not imply completion")
	assert.Equal(t, "NEET UG", updated.Title)
	assert.Len(t, updated.Checklist, 1)

	completed := true
	updated, err = s.Update(ctx, e.ID, &model.EventUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, 100, updated.Progress)
}

func TestUpdateErrors(t *testing.T) {
	s := newTestService(t, &fakeRepository{})
	ctx := context.Background()

	_, err := s.Update(ctx, "missing", &model.EventUpdate{})
	var nfErr *model.NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "missing", nfErr.ID)

	e, err := s.Add(ctx, validDraft("NEET UG", model.CategoryExam, "2025-01-20"))
	require.NoError(t, err)

	progress := 101
	priority := model.Priority("extreme")
	_, err = s.Update(ctx, e.ID, &model.EventUpdate{Progress: &progress, Priority: &priority})
	fields := validationFields(t, err)
	assert.Contains(t, fields, "progress")
	assert.Contains(t, fields, "priority")

	got, err := s.Get(e.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Progress)
	assert.Equal(t, model.PriorityMedium, got.Priority)
}

func TestToggleChecklistItemReplacesOnWrite(t *testing.T) {
	s := newTestService(t, &fakeRepository{})
	ctx := context.Background()

	e, err := s.Add(ctx, validDraft("JEE Main", model.CategoryExam, "2025-01-15"))
	require.NoError(t, err)

	before, err := s.Update(ctx, e.ID, &model.EventUpdate{Checklist: []model.ChecklistItem{
		{Task: "Fill application form"},
		{Task: "Pay application fee"},
	}})
	require.NoError(t, err)

	after, err := s.ToggleChecklistItem(ctx, e.ID, 1)
	require.NoError(t, err)

	assert.False(t, before.Checklist[1].Completed)
	assert.True(t, after.Checklist[1].Completed)
	assert.False(t, after.Checklist[0].Completed)

	after, err = s.ToggleChecklistItem(ctx, e.ID, 1)
	require.NoError(t, err)
	assert.False(t, after.Checklist[1].Completed)

	_, err = s.ToggleChecklistItem(ctx, e.ID, 2)
	assert.Contains(t, validationFields(t, err), "checklist")

	_, err = s.ToggleChecklistItem(ctx, "missing", 0)
	var nfErr *model.NotFoundError
	assert.True(t, errors.As(err, &nfErr))
}

func TestRemove(t *testing.T) {
	repo := &fakeRepository{}
	s := newTestService(t, repo)
	ctx := context.Background()

	a, err := s.Add(ctx, validDraft("a", model.CategoryExam, "2025-02-01"))
	require.NoError(t, err)
	b, err := s.Add(ctx, validDraft("b", model.CategoryExam, "2025-02-01"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, a.ID))

	var nfErr *model.NotFoundError
	assert.True(t, errors.As(s.Remove(ctx, a.ID), &nfErr))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Len(t, repo.stored, 1)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestService(t, &fakeRepository{})

	e, err := s.Add(context.Background(), validDraft("a", model.CategoryExam, "2025-02-01"))
	require.NoError(t, err)

	e.Title = "changed"
	s.All()[0].Requirements = append(s.All()[0].Requirements, "x")

	got, err := s.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Title)
	assert.Empty(t, got.Requirements)
}

func TestLoadRoundTrip(t *testing.T) {
	repo := &fakeRepository{}
	s := newTestService(t, repo)
	ctx := context.Background()

	_, err := s.Add(ctx, validDraft("a", model.CategoryExam, "2025-02-01"))
	require.NoError(t, err)
	_, err = s.Add(ctx, validDraft("b", model.CategoryResult, "2025-03-01"))
	require.NoError(t, err)

	before := repo.stored
	loaded, err := repo.GetEvents(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.SaveEvents(ctx, loaded))
	assert.Equal(t, before, repo.stored)

	reloaded := newTestService(t, repo)
	assert.Equal(t, s.All(), reloaded.All())
}

func TestImportKeepsIDsAndAllowsPastDeadlines(t *testing.T) {
	repo := &fakeRepository{}
	s := newTestService(t, repo)
	ctx := context.Background()

	imported, err := s.Import(ctx, []*model.Event{
		{ID: "seed-1", Title: "Old", Institution: "X", Category: model.CategoryResult, Priority: model.PriorityLow,
			Deadline: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)},
		{ID: "seed-1", Title: "Dup", Institution: "X", Category: model.CategoryExam, Priority: model.PriorityLow,
			Deadline: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	require.Len(t, imported, 2)

	assert.Equal(t, "seed-1", imported[0].ID)
	assert.NotEqual(t, "seed-1", imported[1].ID)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), imported[0].Deadline)

	_, err = s.Import(ctx, []*model.Event{{ID: "bad", Title: "x", Institution: "y", Category: "nope", Priority: model.PriorityLow, Deadline: today}})
	assert.Contains(t, validationFields(t, err), "category")
	assert.Len(t, s.All(), 2)
}

func TestViews(t *testing.T) {
	s := newTestService(t, &fakeRepository{})
	ctx := context.Background()

	_, err := s.Import(ctx, []*model.Event{
		{ID: "jee", Title: "JEE", Institution: "NTA", Category: model.CategoryExam, Priority: model.PriorityHigh,
			Deadline: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "late", Title: "Late", Institution: "NTA", Category: model.CategoryDocument, Priority: model.PriorityHigh,
			Deadline: time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "merit", Title: "Merit", Institution: "MoE", Category: model.CategoryScholarship, Priority: model.PriorityMedium,
			Deadline: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)},
		{ID: "du", Title: "DU", Institution: "DU", Category: model.CategoryAdmission, Priority: model.PriorityHigh,
			Deadline: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), Completed: true},
	})
	require.NoError(t, err)

	ref := s.Today()

	tl := s.Timeline(nil, ref)
	require.Len(t, tl, 4)
	assert.Equal(t, "late", tl[0].ID)
	assert.Equal(t, deadline.UrgencyOverdue, tl[0].Urgency)
	assert.Equal(t, "2 days overdue", tl[0].Remaining)
	assert.Equal(t, "jee", tl[1].ID)
	assert.Equal(t, "du", tl[2].ID)
	assert.Equal(t, "merit", tl[3].ID)

	tl = s.Timeline([]model.Category{model.CategoryScholarship}, ref)
	require.Len(t, tl, 1)
	assert.Equal(t, deadline.UrgencyNormal, tl[0].Urgency)

	onDate := s.OnDate(nil, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), ref)
	require.Len(t, onDate, 2)
	assert.Equal(t, "jee", onDate[0].ID)
	assert.Equal(t, "5 days left", onDate[0].Remaining)

	month := s.Month([]model.Category{model.CategoryExam, model.CategoryDocument}, calendar.YearMonth{Year: 2025, Month: time.January}, ref)
	require.Len(t, month, 3+31)
	assert.True(t, month[0].Date.IsZero())
	require.Len(t, month[3+14].Events, 1)
	assert.Equal(t, "jee", month[3+14].Events[0].ID)

	counts := s.Counts(nil, ref)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 1, counts.Overdue)
	assert.Equal(t, 1, counts.Urgent)
	assert.Equal(t, 1, counts.Categories[model.CategoryExam])
}
