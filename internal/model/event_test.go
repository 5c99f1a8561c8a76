package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	e := &Event{
		ID:           "1",
		Requirements: []string{"Photo ID"},
		Checklist:    []ChecklistItem{{Task: "Pay fee"}},
	}

	c := e.Clone()
	c.Requirements[0] = "changed"
	c.Checklist[0].Completed = true

	assert.Equal(t, "Photo ID", e.Requirements[0])
	assert.False(t, e.Checklist[0].Completed)

	empty := (&Event{Requirements: []string{}}).Clone()
	assert.NotNil(t, empty.Requirements)
	assert.Nil(t, empty.Checklist)
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	got := Date(time.Date(2025, time.January, 15, 23, 45, 0, 0, loc))
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2024-02-29 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
	_, err = ParseDate("15/01/2025")
	assert.Error(t, err)
}

func TestSplitRequirements(t *testing.T) {
	assert.Equal(t, []string{"10th Mark Sheet", "Photo ID"}, SplitRequirements(" 10th Mark Sheet \n\n\tPhoto ID\n  "))
	assert.Empty(t, SplitRequirements("\n \n"))
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 6)
	for _, c := range Categories {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.Label())
	}
	assert.False(t, Category("party").Valid())
	assert.False(t, Priority("urgent").Valid())
}

func TestValidationError(t *testing.T) {
	err := error(&ValidationError{Fields: map[string]string{
		"title":    "event title is required",
		"category": "please select a category",
	}})

	assert.Equal(t, "validation failed: category: please select a category; title: event title is required", err.Error())

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
}
