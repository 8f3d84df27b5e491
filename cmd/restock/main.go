package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/sellerkit/restock-go/internal/cache"
	"github.com/sellerkit/restock-go/internal/config"
	"github.com/sellerkit/restock-go/internal/domain"
	"github.com/sellerkit/restock-go/internal/report"
	"github.com/sellerkit/restock-go/internal/service"
	"github.com/sellerkit/restock-go/pkg/logger"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logger.Log.Debug().Err(err).Msg("could not load .env file")
	}

	cfg := config.Load()

	app := &cli.App{
		Name:  "restock",
		Usage: "Generate restock recommendations from sales and inventory feeds",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run the reorder engine for a brand and write the recommendations CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "brand",
						Usage:   "Brand whose feeds should be analyzed",
						Value:   cfg.App.DefaultBrand,
						EnvVars: []string{"RESTOCK_BRAND"},
					},
					&cli.StringFlag{
						Name:  "sales",
						Usage: "Override path to the sales feed (default <data-dir>/<brand>/reports/sales/sales.csv)",
					},
					&cli.StringFlag{
						Name:  "inventory",
						Usage: "Override path to the inventory feed (default <data-dir>/<brand>/reports/inventory/inventory.csv)",
					},
					&cli.StringFlag{
						Name:  "out",
						Usage: "Output CSV path",
						Value: "",
					},
					&cli.IntFlag{
						Name:  "lead-time",
						Usage: "Average days from ordering to inventory being sellable",
						Value: cfg.Policy.LeadTimeDays,
					},
					&cli.IntFlag{
						Name:  "safety-stock",
						Usage: "Buffer stock against delays or sales spikes, in days of cover",
						Value: cfg.Policy.SafetyStockDays,
					},
					&cli.IntFlag{
						Name:  "desired-cover",
						Usage: "How many days of sales the new order should cover",
						Value: cfg.Policy.DesiredDaysOfCover,
					},
					&cli.StringFlag{
						Name:  "duplicate-policy",
						Usage: "Which inventory row wins for repeated SKUs: last_wins or first_wins",
						Value: cfg.App.DuplicatePolicy,
					},
				},
				Action: runRecommendations,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Fatal().Err(err).Msg("restock run failed")
	}
}

func runRecommendations(c *cli.Context) error {
	cfg := config.Load()

	duplicatePolicy, err := domain.ParseDuplicatePolicy(c.String("duplicate-policy"))
	if err != nil {
		return err
	}

	req := service.RunRequest{
		Brand:         c.String("brand"),
		SalesPath:     c.String("sales"),
		InventoryPath: c.String("inventory"),
		Params: domain.PolicyParams{
			LeadTimeDays:       c.Int("lead-time"),
			SafetyStockDays:    c.Int("safety-stock"),
			DesiredDaysOfCover: c.Int("desired-cover"),
		},
		DuplicatePolicy: duplicatePolicy,
	}

	logger.Log.Info().
		Str("brand", req.Brand).
		Int("lead_time_days", req.Params.LeadTimeDays).
		Int("safety_stock_days", req.Params.SafetyStockDays).
		Int("desired_days_of_cover", req.Params.DesiredDaysOfCover).
		Msg("Generating restock recommendations")

	svc := service.NewRestockService(cfg.App, cache.NewNoopRecommendationCache())
	result, err := svc.Run(c.Context, req)
	if err != nil {
		return err
	}

	if len(result.Recommendations) == 0 {
		logger.Log.Info().Msg("No restock recommendations generated")
		return nil
	}

	outPath := c.String("out")
	if outPath == "" {
		outPath = fmt.Sprintf("%s/restock_recommendations_%s.csv", cfg.App.OutputDir, req.Brand)
	}

	if err := report.WriteFile(outPath, result.Recommendations); err != nil {
		return err
	}

	logger.Log.Info().
		Int("recommendations", len(result.Recommendations)).
		Str("path", outPath).
		Msg("Restock recommendations saved")

	return nil
}
