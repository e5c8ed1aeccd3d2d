// Package logger builds configured log/slog loggers for the addrforge
// binaries. It exposes a small factory with functional options for level,
// output format (text for development, JSON for log aggregation), destination
// writer, and static attributes, plus attribute helpers for common keys.
//
// # Usage
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithFormat(logger.FormatText),
//		logger.WithAttr(slog.String("service", "addressd")),
//	)
//	log.Info("started", logger.Component("server"))
package logger
