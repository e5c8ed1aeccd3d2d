// Package httpserver wraps net/http with graceful shutdown, configurable
// timeouts, a health-check handler, and structured logging via slog.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal
// arrives, then shuts the server down with http.Server.Shutdown under a
// configurable deadline. Construction goes through New with functional
// options, or NewFromConfig with an env-tagged Config struct.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler())
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//	)
//	if err := srv.Run(context.Background(), r); err != nil {
//		slog.Error("server stopped", "err", err)
//	}
//
// Run wraps listen errors with ErrStart and Shutdown wraps shutdown errors
// with ErrShutdown; inspect them with errors.Is.
package httpserver
