package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/timeline-tracker/internal/database"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

// SaveEvents replaces the stored set with events in a single transaction.
func (r *Repository) SaveEvents(ctx context.Context, events []*model.Event) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx, database.PSQL.Delete(database.EventsTable)); err != nil {
			return fmt.Errorf("SQL request: %w", err)
		}

		if len(events) == 0 {
			return nil
		}

		qb := database.PSQL.
			Insert(database.EventsTable).
			Columns(
				"id",
				"position",
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
			)

		for i, e := range events {
			requirements := e.Requirements
			if requirements == nil {
				requirements = []string{}
			}

			qb = qb.Values(
				e.ID,
				i,
				e.Title,
				e.Institution,
				e.Description,
				string(e.Category),
				model.Date(e.Deadline),
				string(e.Priority),
				e.Completed,
				e.Progress,
				requirements,
				mapToChecklistDTO(e.Checklist),
				e.ApplicationURL,
			)
		}

		if _, err := tx.Exec(ctx, qb); err != nil {
			return fmt.Errorf("SQL request: %w", err)
		}

		return nil
	})
}
