package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/placegen/internal/api"
	"github.com/dmitrymomot/placegen/pkg/config"
	"github.com/dmitrymomot/placegen/pkg/httpserver"
	"github.com/dmitrymomot/placegen/pkg/logger"
	"github.com/dmitrymomot/placegen/pkg/placename"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	DatasetPath string `env:"PLACEGEN_DATASET"` // path to a dataset document; empty uses the built-in one
	Server      httpserver.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "placegen"))
	logger.SetAsDefault(log)

	ds := placename.DefaultDataset()
	source := "embedded"
	if cfg.DatasetPath != "" {
		gen := placename.New()
		if err := gen.LoadFile(cfg.DatasetPath); err != nil {
			log.Error("dataset unusable", logger.Dataset(cfg.DatasetPath), logger.Error(err))
			os.Exit(1)
		}
		ds = gen.Dataset()
		source = cfg.DatasetPath
	}
	log.Info("dataset loaded",
		logger.Dataset(source),
		logger.Count(len(ds.FirstParts)+len(ds.SecondParts)),
	)

	handler := api.NewHandler(ds, log)
	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))

	if err := srv.Run(context.Background(), handler.Router()); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
