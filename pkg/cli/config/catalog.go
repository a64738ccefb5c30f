package config

import (
	"github.com/complypilot/complypilot/pkg/catalog"
	"github.com/complypilot/complypilot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Catalog holds CLI flags for question and risk template catalog overrides
type Catalog struct {
	questionsPath string
	templatesPath string
}

// Flags returns CLI flags for catalog configuration
func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog-questions-file",
			Usage:       "TOML file overriding the embedded health check questions",
			Sources:     cli.EnvVars("COMPLYPILOT_CATALOG_QUESTIONS_FILE"),
			Destination: &x.questionsPath,
		},
		&cli.StringFlag{
			Name:        "catalog-templates-file",
			Usage:       "TOML file overriding the embedded risk templates",
			Sources:     cli.EnvVars("COMPLYPILOT_CATALOG_TEMPLATES_FILE"),
			Destination: &x.templatesPath,
		},
	}
}

// Configure loads and validates the catalog, applying any file overrides.
func (x *Catalog) Configure() (*catalog.Catalog, error) {
	cat, err := catalog.LoadFiles(x.questionsPath, x.templatesPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog")
	}

	if x.questionsPath != "" || x.templatesPath != "" {
		logging.Default().Info("Loaded catalog overrides",
			"questions_file", x.questionsPath,
			"templates_file", x.templatesPath,
		)
	}

	return cat, nil
}
