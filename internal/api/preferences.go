package api

import (
	"net/http"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

func (a *Api) getPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	prefs, err := a.preferences.Get(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, prefs, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Types            map[model.Category]bool `json:"types"`
		Methods          map[model.Method]bool   `json:"methods"`
		ReminderLeadDays map[model.Category]int  `json:"reminder_lead_days"`
		QuietHours       *struct {
			Enabled *bool   `json:"enabled"`
			Start   *string `json:"start"`
			End     *string `json:"end"`
		} `json:"quiet_hours"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	info := &model.PreferencesUpdate{
		Types:            req.Types,
		Methods:          req.Methods,
		ReminderLeadDays: req.ReminderLeadDays,
	}
	if q := req.QuietHours; q != nil {
		info.QuietHours = &model.QuietHoursUpdate{
			Enabled: q.Enabled,
			Start:   q.Start,
			End:     q.End,
		}
	}

	prefs, err := a.preferences.Update(r.Context(), info)
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, prefs, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) resetPreferencesHandler(w http.ResponseWriter, r *http.Request) {
	prefs, err := a.preferences.Reset(r.Context())
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, prefs, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
