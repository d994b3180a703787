package mwmetrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
	"time"
)

type Recorder interface {
	ObserveHTTP(route, method string, code int, d time.Duration)
}

// New records every request under its chi route pattern, so /events/{id} is one series.
func New(rec Recorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			rec.ObserveHTTP(route, r.Method, status, time.Since(start))
		}

		return http.HandlerFunc(fn)
	}
}
