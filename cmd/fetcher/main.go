package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/flagon1004/market-dashboard/internal/config"
	"github.com/flagon1004/market-dashboard/internal/pipeline"
	"github.com/flagon1004/market-dashboard/internal/repository"
	"github.com/flagon1004/market-dashboard/pkg/notion"
	"github.com/flagon1004/market-dashboard/pkg/quotes"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	source := notion.NewClient(cfg.NotionToken)
	feed := quotes.NewClient()
	repo := repository.NewDashboardRepository(cfg.OutputPath)

	run := func() {
		dashboard := pipeline.Aggregate(cfg, source, feed, time.Now())

		if err := repo.Save(dashboard); err != nil {
			slog.Error("error saving dashboard", "path", cfg.OutputPath, "error", err)
			return
		}

		slog.Info("dashboard saved", "path", cfg.OutputPath)
	}

	run()

	if cfg.FetchCron == "" {
		return
	}

	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(cfg.FetchCron, run); err != nil {
		log.Fatalf("invalid FETCH_CRON %q: %v", cfg.FetchCron, err)
	}

	slog.Info("fetch schedule started", "spec", cfg.FetchCron)
	c.Run()
}
