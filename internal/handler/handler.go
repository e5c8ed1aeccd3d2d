// Package handler exposes the address generator over HTTP for demo and
// seed-data consumers.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/addrforge/addrforge/pkg/addressgen"
	"github.com/addrforge/addrforge/pkg/httpserver"
)

// maxBatchSize caps one /v1/addresses response.
const maxBatchSize = 1000

type handler struct {
	log *slog.Logger
	gen *addressgen.Generator
}

// New builds the HTTP routing for the address service.
func New(log *slog.Logger, gen *addressgen.Generator) http.Handler {
	h := &handler{log: log, gen: gen}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/address", h.address)
		r.Get("/addresses", h.addresses)
	})
	return r
}

func (h *handler) address(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.gen.Address(zipOptions(r)...))
}

func (h *handler) addresses(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		count = n
	}
	count = min(max(count, 1), maxBatchSize)

	opts := zipOptions(r)
	addrs := make([]addressgen.Address, count)
	for i := range addrs {
		addrs[i] = h.gen.Address(opts...)
	}

	h.log.DebugContext(r.Context(), "generated address batch", "count", count)
	writeJSON(w, http.StatusOK, addrs)
}

// zipOptions maps the nine_digit_zip and no_dash query flags to generator
// options.
func zipOptions(r *http.Request) []addressgen.ZipOption {
	var opts []addressgen.ZipOption
	q := r.URL.Query()
	if q.Get("nine_digit_zip") == "true" {
		opts = append(opts, addressgen.NineDigit())
	}
	if q.Get("no_dash") == "true" {
		opts = append(opts, addressgen.NoDash())
	}
	return opts
}
