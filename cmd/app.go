package cmd

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/kamusis/prodfinder/internal/catalog"
	"github.com/kamusis/prodfinder/internal/config"
	"github.com/kamusis/prodfinder/internal/logging"
	"github.com/kamusis/prodfinder/internal/query"
	"github.com/kamusis/prodfinder/internal/search"
)

// app bundles what a command needs after config and catalog are loaded.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	catalog *catalog.Catalog
	engine  *search.Engine
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'prodfinder doctor' for details.", err)
	}
	log := newLogger(cfg)

	cat, err := openCatalog(cfg, log)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		log:     log,
		catalog: cat,
		engine:  search.NewEngine(cat, buildRules(cfg), log),
	}, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if flagDebug {
		level = "debug"
	}
	return logging.New(logging.Config{Level: level, Format: cfg.LogFormat, NoColor: flagNoColor})
}

// openCatalog loads the --catalog file, the configured file, or the bundled
// catalog, in that order.
func openCatalog(cfg *config.Config, log zerolog.Logger) (*catalog.Catalog, error) {
	path := cfg.CatalogPath
	if flagCatalog != "" {
		expanded, err := config.ExpandPath(flagCatalog)
		if err != nil {
			return nil, err
		}
		path = expanded
	}

	var (
		cat *catalog.Catalog
		err error
	)
	if path == "" {
		cat, err = catalog.Default()
	} else {
		cat, err = catalog.Load(path)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("source", cat.Source()).Int("products", cat.Len()).Msg("catalog loaded")
	return cat, nil
}

// buildRules layers config keyword additions over the built-in vocabulary.
func buildRules(cfg *config.Config) *query.Rules {
	r := query.DefaultRules()
	categories := make([]string, 0, len(cfg.Keywords))
	for c := range cfg.Keywords {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		r.AddKeywords(c, cfg.Keywords[c]...)
	}
	r.AddPremiumWords(cfg.PremiumWords...)
	r.AddBudgetWords(cfg.BudgetWords...)
	return r
}
