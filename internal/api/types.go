package api

import (
	"encoding/json"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

// date is a calendar day written as YYYY-MM-DD. Placeholder grid days are null.
type date time.Time

func (d date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(model.DateFormat))
}
