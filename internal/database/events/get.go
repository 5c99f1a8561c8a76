package events

import (
	"context"
	"fmt"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

func (r *Repository) GetEvents(ctx context.Context) ([]*model.Event, error) {
	qb := baseQuery.
		OrderBy("position")

	var dtos []*eventDTO
	if err := r.db.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		res[i] = mapToEvent(d)
	}

	return res, nil
}
