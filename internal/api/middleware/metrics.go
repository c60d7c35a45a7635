package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// routeUnknown метка для запросов, не попавших ни в один маршрут
const routeUnknown = "unknown"

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута mux
func MetricsMiddleware(recorder HTTPRecorder) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			recorder.ObserveHTTPRequest(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}

// routeTemplate шаблон маршрута вместо сырого пути, чтобы не раздувать кардинальность
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return routeUnknown
	}

	tpl, err := route.GetPathTemplate()
	if err != nil {
		return routeUnknown
	}
	return tpl
}
