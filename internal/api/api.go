package api

import (
	"context"
	"net/http"
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/business/events"
	"github.com/SergeyKozhin/timeline-tracker/internal/calendar"
	"github.com/SergeyKozhin/timeline-tracker/internal/deadline"
	"github.com/SergeyKozhin/timeline-tracker/internal/model"
	"github.com/SergeyKozhin/timeline-tracker/internal/timeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Api struct {
	handler     http.Handler
	logger      *zap.SugaredLogger
	maxBodySize int64

	events      eventsService
	preferences preferencesService
}

type eventsService interface {
	Add(ctx context.Context, draft *model.EventDraft) (*model.Event, error)
	Update(ctx context.Context, id string, info *model.EventUpdate) (*model.Event, error)
	ToggleChecklistItem(ctx context.Context, id string, index int) (*model.Event, error)
	Remove(ctx context.Context, id string) error
	Get(id string) (*model.Event, error)
	Today() time.Time
	Timeline(categories []model.Category, today time.Time) []*deadline.Annotated
	OnDate(categories []model.Category, date, today time.Time) []*deadline.Annotated
	Month(categories []model.Category, ym calendar.YearMonth, today time.Time) []events.MonthDay
	Counts(categories []model.Category, today time.Time) timeline.Counts
}

type preferencesService interface {
	Get(ctx context.Context) (*model.NotificationPreferences, error)
	Update(ctx context.Context, info *model.PreferencesUpdate) (*model.NotificationPreferences, error)
	Reset(ctx context.Context) (*model.NotificationPreferences, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	maxBodySize int64,
	events eventsService,
	preferences preferencesService,
) (*Api, error) {
	a := &Api{
		logger:      logger,
		maxBodySize: maxBodySize,
		events:      events,
		preferences: preferences,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/categories", a.getCategoriesHandler)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", a.getEventsHandler)
		r.Post("/", a.createEventHandler)
		r.Get("/counts", a.getEventCountsHandler)

		r.With(a.eventCtx).Route("/{eventID}", func(r chi.Router) {
			r.Get("/", a.getEventHandler)
			r.Patch("/", a.updateEventHandler)
			r.Delete("/", a.deleteEventHandler)
			r.Post("/checklist/{index}/toggle", a.toggleChecklistItemHandler)
		})
	})

	r.Get("/calendar/{year}/{month}", a.getMonthHandler)

	r.Route("/preferences", func(r chi.Router) {
		r.Get("/", a.getPreferencesHandler)
		r.Patch("/", a.updatePreferencesHandler)
		r.Post("/reset", a.resetPreferencesHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
