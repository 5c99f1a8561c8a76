package api

import (
	"net/http"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

func (a *Api) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	type categoryResp struct {
		Value model.Category `json:"value"`
		Label string         `json:"label"`
	}

	categories := make([]categoryResp, len(model.Categories))
	for i, c := range model.Categories {
		categories[i] = categoryResp{Value: c, Label: c.Label()}
	}

	resp := map[string]interface{}{
		"categories":       categories,
		"priorities":       model.Priorities,
		"methods":          model.Methods,
		"lead_day_options": model.LeadDayOptions,
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
