package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/calendar"
	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/SergeyKozhin/timeline-tracker/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const (
	viewTimeline = "timeline"
	viewCalendar = "calendar"
)

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		Title            string         `json:"title"`
		Institution      string         `json:"institution"`
		Category         model.Category `json:"category"`
		Deadline         string         `json:"deadline"`
		Priority         model.Priority `json:"priority"`
		Description      string         `json:"description"`
		Requirements     []string       `json:"requirements"`
		RequirementsText string         `json:"requirements_text"`
		ApplicationURL   string         `json:"application_url"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.events.Add(r.Context(), &model.EventDraft{
		Title:            req.Title,
		Institution:      req.Institution,
		Category:         req.Category,
		Deadline:         req.Deadline,
		Priority:         req.Priority,
		Description:      req.Description,
		Requirements:     req.Requirements,
		RequirementsText: req.RequirementsText,
		ApplicationURL:   req.ApplicationURL,
	})
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(deadline.Annotate(event, a.events.Today()))

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/events/%s", event.ID))

	if err := a.writeJSON(w, http.StatusCreated, resp, headers); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := parseCategories(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	today := a.events.Today()

	view := r.URL.Query().Get("view")
	if !validator.In(view, "", viewTimeline, viewCalendar) {
		a.badRequestResponse(w, r, fmt.Errorf("unknown view %q", view))
		return
	}

	var events []*deadline.Annotated
	if view == viewCalendar {
		day := today
		if v := r.URL.Query().Get("date"); v != "" {
			day, err = model.ParseDate(v)
			if err != nil {
				a.badRequestResponse(w, r, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v))
				return
			}
		}
		events = a.events.OnDate(categories, day, today)
	} else {
		events = a.events.Timeline(categories, today)
	}

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventCountsHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := parseCategories(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	counts := a.events.Counts(categories, a.events.Today())

	if err := a.writeJSON(w, http.StatusOK, counts, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(deadline.Annotate(event, a.events.Today()))

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	req := &struct {
		Title          *string            `json:"title"`
		Institution    *string            `json:"institution"`
		Description    *string            `json:"description"`
		Category       *model.Category    `json:"category"`
		Deadline       *string            `json:"deadline"`
		Priority       *model.Priority    `json:"priority"`
		Completed      *bool              `json:"completed"`
		Progress       *int               `json:"progress"`
		Requirements   []string           `json:"requirements"`
		Checklist      []checklistItemReq `json:"checklist"`
		ApplicationURL *string            `json:"application_url"`
	}{}

	if err := a.readJSONLenient(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	updated, err := a.events.Update(r.Context(), event.ID, &model.EventUpdate{
		Title:          req.Title,
		Institution:    req.Institution,
		Description:    req.Description,
		Category:       req.Category,
		Deadline:       req.Deadline,
		Priority:       req.Priority,
		Completed:      req.Completed,
		Progress:       req.Progress,
		Requirements:   req.Requirements,
		Checklist:      mapToChecklist(req.Checklist),
		ApplicationURL: req.ApplicationURL,
	})
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(deadline.Annotate(updated, a.events.Today()))

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) toggleChecklistItemHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	updated, err := a.events.ToggleChecklistItem(r.Context(), event.ID, index)
	if err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	resp, _ := mapToEventResp(deadline.Annotate(updated, a.events.Today()))

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	event, err := eventFromContext(r)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.events.Remove(r.Context(), event.ID); err != nil {
		a.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *Api) getMonthHandler(w http.ResponseWriter, r *http.Request) {
	type dayResp struct {
		Date   date         `json:"date"`
		Events []*eventResp `json:"events"`
	}
	type monthResp struct {
		Year         int        `json:"year"`
		Month        time.Month `json:"month"`
		FirstWeekday int        `json:"first_weekday"`
		DaysInMonth  int        `json:"days_in_month"`
		Days         []dayResp  `json:"days"`
		Prev         string     `json:"prev"`
		Next         string     `json:"next"`
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	ym := calendar.YearMonth{Year: year, Month: time.Month(month)}
	if !ym.Valid() {
		a.notFoundResponse(w, r)
		return
	}

	categories, err := parseCategories(r)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	days := a.events.Month(categories, ym, a.events.Today())

	resp := monthResp{
		Year:         ym.Year,
		Month:        ym.Month,
		FirstWeekday: calendar.FirstWeekdayOfMonth(ym.Year, ym.Month),
		DaysInMonth:  calendar.DaysInMonth(ym.Year, ym.Month),
		Days:         make([]dayResp, len(days)),
		Prev:         monthPath(calendar.NavigateMonth(ym, -1)),
		Next:         monthPath(calendar.NavigateMonth(ym, 1)),
	}
	for i, d := range days {
		events, _ := mapSlice(d.Events, mapToEventResp)
		resp.Days[i] = dayResp{
			Date:   date(d.Date),
			Events: events,
		}
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func monthPath(ym calendar.YearMonth) string {
	return fmt.Sprintf("/calendar/%d/%d", ym.Year, int(ym.Month))
}
