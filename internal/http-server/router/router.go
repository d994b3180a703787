// Package router mounts the HTTP API.
package router

import (
	"eventsBoard/internal/exporter/calendar"
	"eventsBoard/internal/http-server/handlers/auth/login"
	"eventsBoard/internal/http-server/handlers/auth/logout"
	"eventsBoard/internal/http-server/handlers/auth/me"
	"eventsBoard/internal/http-server/handlers/auth/signUp"
	"eventsBoard/internal/http-server/handlers/category/createCategory"
	"eventsBoard/internal/http-server/handlers/category/deleteCategory"
	"eventsBoard/internal/http-server/handlers/category/listCategories"
	"eventsBoard/internal/http-server/handlers/event/deleteEvent"
	"eventsBoard/internal/http-server/handlers/event/exportCalendar"
	"eventsBoard/internal/http-server/handlers/event/getEvent"
	"eventsBoard/internal/http-server/handlers/event/listAdminEvents"
	"eventsBoard/internal/http-server/handlers/event/listEvents"
	"eventsBoard/internal/http-server/handlers/event/moderateEvent"
	"eventsBoard/internal/http-server/handlers/event/submitEvent"
	"eventsBoard/internal/http-server/handlers/filters/clearFilters"
	"eventsBoard/internal/http-server/handlers/filters/getFilters"
	"eventsBoard/internal/http-server/handlers/filters/setFilters"
	"eventsBoard/internal/http-server/middleware/mwauth"
	"eventsBoard/internal/http-server/middleware/mwlogger"
	"eventsBoard/internal/http-server/middleware/mwmetrics"
	"eventsBoard/internal/http-server/middleware/mwsession"
	"eventsBoard/internal/lib/api/response"
	"eventsBoard/internal/metrics"
	"eventsBoard/internal/models"
	"eventsBoard/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
)

type Deps struct {
	Events       *store.EventService
	Categories   *store.CategoryService
	Auth         *store.AuthService
	Sessions     mwsession.Manager
	Calendar     *calendar.Encoder
	Metrics      *metrics.Metrics
	SecureCookie bool
}

func New(log *slog.Logger, d Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwmetrics.New(d.Metrics))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})
	router.Handle("/metrics", d.Metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(mwsession.New(log, d.Sessions, d.Auth, d.SecureCookie))

		r.Get("/categories", listCategories.New(log, d.Categories))

		// URLFormat routes /events.ics here with the "ics" format in context.
		r.Get("/events", byFormat(
			listEvents.New(log, d.Events),
			map[string]http.HandlerFunc{"ics": exportCalendar.New(log, d.Events, d.Calendar)},
		))
		r.Post("/events", submitEvent.New(log, d.Events))
		r.Get("/events/{id}", getEvent.New(log, d.Events))

		r.Get("/filters", getFilters.New(log, d.Events))
		r.Patch("/filters", setFilters.New(log, d.Events))
		r.Delete("/filters", clearFilters.New(log, d.Events))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", signUp.New(log, d.Auth))
			r.Post("/login", login.New(log, d.Auth))
			r.Post("/logout", logout.New(log, d.Auth))
			r.Get("/me", me.New(log, d.Auth))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mwauth.RequireAdmin(log))

			r.Get("/events", listAdminEvents.New(log, d.Events))
			r.Post("/events/{id}/approve", moderateEvent.New(log, d.Events, models.StatusApproved))
			r.Post("/events/{id}/reject", moderateEvent.New(log, d.Events, models.StatusRejected))
			r.Delete("/events/{id}", deleteEvent.New(log, d.Events))

			r.Post("/categories", createCategory.New(log, d.Categories))
			r.Delete("/categories/{id}", deleteCategory.New(log, d.Categories))
		})
	})

	return router
}

func byFormat(def http.HandlerFunc, formats map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, _ := r.Context().Value(middleware.URLFormatCtxKey).(string)
		if h, ok := formats[format]; ok {
			h(w, r)
			return
		}
		def(w, r)
	}
}
