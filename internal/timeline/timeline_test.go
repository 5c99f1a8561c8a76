package timeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixture() []*model.Event {
	return []*model.Event{
		{ID: "1", Category: model.CategoryExam, Deadline: day(2025, time.January, 15)},
		{ID: "2", Category: model.CategoryExam, Deadline: day(2025, time.January, 8)},
		{ID: "3", Category: model.CategoryScholarship, Deadline: day(2025, time.February, 28)},
		{ID: "4", Category: model.CategoryAdmission, Deadline: day(2025, time.January, 15)},
		{ID: "5", Category: model.CategoryResult, Deadline: day(2025, time.January, 10)},
		{ID: "6", Category: model.CategoryScholarship, Deadline: day(2025, time.January, 1), Completed: true},
	}
}

func ids(events []*model.Event) []string {
	res := make([]string, len(events))
	for i, e := range events {
		res[i] = e.ID
	}
	return res
}

func TestFilterEmptyMeansAll(t *testing.T) {
	events := fixture()

	got := Filter(events, nil)
	assert.Equal(t, events, got)

	got = Filter(events, []model.Category{})
	assert.Equal(t, ids(events), ids(got))
}

func TestFilterMatchesCounts(t *testing.T) {
	events := fixture()
	counts := CountsByCategory(events, day(2025, time.January, 10))

	for _, c := range model.Categories {
		got := Filter(events, []model.Category{c})
		for _, e := range got {
			assert.Equal(t, c, e.Category)
		}
		assert.Equal(t, counts.Categories[c], len(got), c)
	}

	got := Filter(events, []model.Category{model.CategoryExam, model.CategoryResult})
	assert.Equal(t, []string{"1", "2", "5"}, ids(got))
}

func TestSortByDeadlineStable(t *testing.T) {
	events := fixture()
	got := SortByDeadline(events)

	assert.Equal(t, []string{"6", "2", "5", "1", "4", "3"}, ids(got))
	assert.Equal(t, "1", events[0].ID, "input must not be reordered")

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]*model.Event(nil), events...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		sorted := SortByDeadline(shuffled)
		require.Len(t, sorted, len(shuffled))
		for k := 1; k < len(sorted); k++ {
			assert.False(t, sorted[k].Deadline.Before(sorted[k-1].Deadline))
		}

		pos := make(map[string]int, len(shuffled))
		for k, e := range shuffled {
			pos[e.ID] = k
		}
		for k := 1; k < len(sorted); k++ {
			if sorted[k].Deadline.Equal(sorted[k-1].Deadline) {
				assert.Less(t, pos[sorted[k-1].ID], pos[sorted[k].ID])
			}
		}
	}
}

func TestCountsByCategory(t *testing.T) {
	counts := CountsByCategory(fixture(), day(2025, time.January, 10))

	assert.Equal(t, map[model.Category]int{
		model.CategoryAdmission:   1,
		model.CategoryScholarship: 2,
		model.CategoryExam:        2,
		model.CategoryDocument:    0,
		model.CategoryInterview:   0,
		model.CategoryResult:      1,
	}, counts.Categories)
	assert.Equal(t, 1, counts.Completed)
	assert.Equal(t, 1, counts.Overdue)
	assert.Equal(t, 3, counts.Urgent)
}
