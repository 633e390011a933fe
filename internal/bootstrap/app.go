// Package bootstrap builds the application dependency graph.
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-match/internal/analysis"
	"resume-match/internal/jobs"
	"resume-match/internal/shared/config"
	"resume-match/internal/shared/server"
	"resume-match/internal/taxonomy"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Taxonomy        *taxonomy.Taxonomy
	Ranker          *jobs.Ranker
	AnalysisService *analysis.Service
	AnalysisHandler *analysis.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	tax, err := buildTaxonomy(cfg)
	if err != nil {
		return nil, err
	}

	ranker, err := buildRanker(cfg)
	if err != nil {
		return nil, err
	}

	svc := analysis.NewService(tax, ranker)
	handler := analysis.NewHandler(svc)

	app := &App{
		Config:          cfg,
		Taxonomy:        tax,
		Ranker:          ranker,
		AnalysisService: svc,
		AnalysisHandler: handler,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: handler,
	})

	return app, nil
}

func buildTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	if path := strings.TrimSpace(cfg.TaxonomyPath); path != "" {
		tax, err := taxonomy.Load(path)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load taxonomy from %s: %w", path, err)
		}
		return tax, nil
	}
	return taxonomy.Default(), nil
}

func buildRanker(cfg config.Config) (*jobs.Ranker, error) {
	if path := strings.TrimSpace(cfg.JobCatalogPath); path != "" {
		ranker, err := jobs.LoadRanker(path)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: load job catalog from %s: %w", path, err)
		}
		return ranker, nil
	}
	return jobs.NewRanker(), nil
}
