package events

import (
	"github.com/SergeyKozhin/timeline-tracker/internal/database"
)

var baseQuery = database.PSQL.
	Select(
		"id",
		"title",
		"institution",
		"description",
		"category",
		"deadline",
		"priority",
		"completed",
		"progress",
		"requirements",
		"checklist",
		"application_url",
	).
	From(database.EventsTable)

// Repository keeps the event set in postgres. Row order is the insertion order.
type Repository struct {
	db database.PGX
}

func NewRepository(db database.PGX) *Repository {
	return &Repository{db: db}
}
