package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joe135730/Concensor-sub001/internal/telemetry"
)

// Metrics records request counts and latency, labelled by the matched chi
// route pattern so path parameters do not explode label cardinality.
//
// A panicking handler is counted as a 500 before the panic continues to
// Recovery, wherever Recovery sits in the chain.
func Metrics(m *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrap(w)

			defer func() {
				status := rw.status
				rec := recover()
				if rec != nil && !rw.wroteHeader {
					status = http.StatusInternalServerError
				}

				m.ObserveRequest(routePattern(r), r.Method, status, time.Since(start))

				if rec != nil {
					panic(rec)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
