package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/go-chi/chi/v5"
)

type contextKey string

const (
	contextKeyEvent = contextKey("event")
)

var errCantRetrieveEvent = errors.New("can't retrieve event from context")

// eventCtx resolves {eventID} and responds 404 when the event does not exist.
func (a *Api) eventCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		event, err := a.events.Get(chi.URLParam(r, "eventID"))
		if err != nil {
			a.serviceErrorResponse(w, r, err)
			return
		}

		eventCtx := context.WithValue(r.Context(), contextKeyEvent, event)
		next.ServeHTTP(w, r.WithContext(eventCtx))
	})
}

func eventFromContext(r *http.Request) (*model.Event, error) {
	event, ok := r.Context().Value(contextKeyEvent).(*model.Event)
	if !ok {
		return nil, errCantRetrieveEvent
	}
	return event, nil
}
