package httpserver

import "net/http"

// HealthCheckHandler returns a liveness handler responding 200 OK.
func HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
