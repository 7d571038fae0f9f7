package pipeline

import (
	"log/slog"
	"time"

	"github.com/flagon1004/market-dashboard/internal/config"
	"github.com/flagon1004/market-dashboard/internal/model"
	"github.com/flagon1004/market-dashboard/pkg/quotes"
)

const dateFormat = "2006-01-02"

var kst = time.FixedZone("KST", 9*60*60)

// Aggregate performs one full collection run and always returns a complete
// dashboard: table discovery, four normalizer passes, the eight index
// quotes, and timestamps. Upstream failures degrade to sample or empty
// content, never to a missing field.
func Aggregate(cfg config.Config, source Source, feed Feed, now time.Time) *model.Dashboard {
	d := &model.Dashboard{
		UpdatedAt:       now.UTC().Format(time.RFC3339),
		UpdatedKST:      now.In(kst).Format("2006-01-02 15:04 KST"),
		Summary:         []string{},
		Sectors:         []model.SectorMove{},
		Stocks:          []model.StockHighlight{},
		News:            []model.NewsItem{},
		Recommendations: []model.Recommendation{},
	}

	today := now.In(kst).Format(dateFormat)
	slog.Info("collection run started", "date", today)

	if cfg.NotionToken == "" || cfg.NotionPageID == "" {
		slog.Warn("NOTION_TOKEN / NOTION_PAGE_ID not set, using sample data")
		model.ApplySample(d)
	} else if err := collectTables(d, source, cfg.NotionPageID, today); err != nil {
		slog.Error("table discovery failed, using sample data", "error", err)
		model.ApplySample(d)
	}

	d.Indices = collectIndices(feed)
	return d
}

// collectTables resolves the four tables and runs their normalizers in
// fixed order. Only a discovery failure is returned; everything below it
// is contained by the normalizers' own fallbacks.
func collectTables(d *model.Dashboard, source Source, pageID, today string) error {
	dbs, err := source.ChildDatabases(pageID)
	if err != nil {
		return err
	}

	slog.Info("tables discovered", "count", len(dbs))
	if len(dbs) < tableCount {
		slog.Warn("fewer tables than expected", "want", tableCount, "got", len(dbs))
	}

	bound := bindRoles(dbs)

	if db, ok := bound[RoleDailyLog]; ok {
		d.Summary, d.MarketStrength = dailyLog(source, db, today)
	}
	if db, ok := bound[RoleLeaders]; ok {
		d.Sectors, d.Stocks = leaders(source, db, today)
	}
	if db, ok := bound[RoleNews]; ok {
		d.News = news(source, db, today)
	}
	if db, ok := bound[RolePicks]; ok {
		d.Recommendations = picks(source, db, today)
	} else {
		slog.Warn("picks table not created yet, using sample recommendations")
		d.Recommendations = model.SampleRecommendations()
	}

	return nil
}

// collectIndices queries the feed for each fixed index. A failed symbol
// becomes a zeroed quote and never affects the others.
func collectIndices(feed Feed) map[string]model.IndexQuote {
	indices := make(map[string]model.IndexQuote, len(quotes.Targets))

	for _, t := range quotes.Targets {
		q, err := feed.Quote(t.Symbol, t.Decimals)
		if err != nil {
			slog.Warn("index quote failed", "key", t.Key, "symbol", t.Symbol, "error", err)
			indices[t.Key] = model.IndexQuote{Pos: true}
			continue
		}

		indices[t.Key] = model.IndexQuote{Price: q.Price, Change: q.Change, Pct: q.Pct, Pos: q.Pos}
		slog.Info("index quote", "key", t.Key, "price", q.Price, "pct", q.Pct)
	}

	return indices
}
