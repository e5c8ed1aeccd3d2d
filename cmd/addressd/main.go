// Command addressd serves synthetic addresses over HTTP for demo and
// seed-data consumers.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/addrforge/addrforge/internal/handler"
	"github.com/addrforge/addrforge/pkg/addressgen"
	"github.com/addrforge/addrforge/pkg/config"
	"github.com/addrforge/addrforge/pkg/httpserver"
	"github.com/addrforge/addrforge/pkg/logger"
)

type appConfig struct {
	Server    httpserver.Config
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	Dataset   string `env:"DATASET_FILE"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", "addressd")),
	)
	logger.SetAsDefault(log)

	gen, err := newGenerator(cfg.Dataset)
	if err != nil {
		log.Error("failed to load dataset", logger.Error(err), "file", cfg.Dataset)
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), handler.New(log, gen)); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

// newGenerator builds a generator over the built-in en_US tables, or over a
// custom YAML dataset when DATASET_FILE is set.
func newGenerator(path string) (*addressgen.Generator, error) {
	if path == "" {
		return addressgen.New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := addressgen.LoadDataset(f)
	if err != nil {
		return nil, err
	}
	return addressgen.New(addressgen.WithDataset(ds)), nil
}
