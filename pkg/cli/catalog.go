package cli

import (
	"context"
	"fmt"

	"github.com/complypilot/complypilot/pkg/cli/config"
	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

func cmdCatalog() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:  "catalog",
		Usage: "Validate and print the question and risk template catalog",
		Flags: catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			// Configure validates question categories, weights and template
			// coverage; reaching this point means the catalog is usable.
			cat, err := catalogCfg.Configure()
			if err != nil {
				return err
			}

			header := color.New(color.FgCyan, color.Bold)
			id := color.New(color.FgGreen)
			dim := color.New(color.Faint)

			questions := cat.Questions()
			header.Printf("Health check questions (%d)\n", len(questions))
			for _, category := range types.AllQuestionCategories() {
				fmt.Printf("\n  %s (%d)\n", category, cat.CategoryCounts()[category])
				for _, q := range questions {
					if q.Category != category {
						continue
					}
					fmt.Printf("    %s  [w%d] %s\n", id.Sprint(q.ID), q.Weight, q.Text)
					if q.Guidance != "" {
						dim.Printf("            %s\n", q.Guidance)
					}
				}
			}

			header.Printf("\nRisk templates\n")
			for _, bt := range types.AllBusinessTypes() {
				templates := cat.TemplatesFor(bt)
				fmt.Printf("\n  %s (%d)\n", bt, len(templates))
				for _, tmpl := range templates {
					rating := fmt.Sprintf("%s/%s", tmpl.Likelihood, tmpl.Impact)
					fmt.Printf("    [%s] %s\n", severityColor(tmpl.Impact).Sprint(rating), tmpl.Title)
					dim.Printf("          %s\n", tmpl.Mitigation)
				}
			}

			fmt.Println()
			color.New(color.FgGreen, color.Bold).Printf("Catalog OK: %d questions, %d business types\n",
				len(questions), len(types.AllBusinessTypes()))
			return nil
		},
	}
}

func severityColor(impact types.Impact) *color.Color {
	switch impact {
	case types.ImpactHigh:
		return color.New(color.FgRed)
	case types.ImpactMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}
