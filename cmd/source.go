package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"lca-bot/config"
	"lca-bot/controllers"
	"lca-bot/inventory"
)

// appContext bundles what every command needs after configuration is loaded.
type appContext struct {
	cfg      config.Config
	logger   zerolog.Logger
	source   inventory.Source
	importer controllers.Importer
	closer   io.Closer
}

func (a *appContext) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// loadApp reads configuration, builds the logger and opens the configured
// inventory source.
func loadApp() (*appContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	app := &appContext{cfg: cfg, logger: config.InitLogger(cfg.Log)}

	switch cfg.Inventory.Source {
	case config.SourceRandom, "":
		app.source = inventory.NewRandomSource(nil)
	case config.SourceFile:
		if cfg.Inventory.File == "" {
			return nil, fmt.Errorf("inventory.file is required for the %s source", config.SourceFile)
		}
		app.source = inventory.FileSource{Path: cfg.Inventory.File}
	case config.SourceSQLite:
		db, err := config.OpenDB(cfg.Inventory.DSN)
		if err != nil {
			return nil, err
		}
		src := inventory.SQLiteSource{DB: db}
		app.source, app.importer, app.closer = src, src, db
	default:
		return nil, fmt.Errorf("%w: %q", inventory.ErrUnknownSource, cfg.Inventory.Source)
	}

	app.logger.Debug().
		Str("source", cfg.Inventory.Source).
		Str("output_dir", cfg.Output.Dir).
		Msg("configuration loaded")

	return app, nil
}
