package pipeline

import (
	"log/slog"
	"strings"

	"github.com/flagon1004/market-dashboard/internal/model"
	"github.com/flagon1004/market-dashboard/pkg/notion"
	"github.com/flagon1004/market-dashboard/pkg/parse"
)

// Column names as they appear in the source tables.
const (
	colDate      = "날짜"
	colStrength  = "시장 강도"
	colSummary   = "AI 3줄 요약"
	colStockName = "종목명"
	colSectors   = "주도 섹터"
	colStocks    = "특이 종목"
	colNewsTitle = "뉴스 제목"
	colNewsBody  = "AI 뉴스 요약"
	colGrade     = "추천등급"
	colTimeframe = "투자기간"
	colReason    = "추천사유"
)

const (
	summaryLines   = 3
	newsQueryLimit = 10
	maxPicks       = 5
)

// availability tags what a table had for today, separating "present but
// empty" from "could not be read" so fallbacks stay distinct.
type availability int

const (
	present availability = iota
	empty
	unavailable
)

func queryToday(source Source, db notion.Database, col, today string) ([]notion.Page, availability) {
	rows, err := source.QueryByDate(db.ID, col, today)
	if err != nil {
		slog.Error("table query failed", "table", db.Title, "error", err)
		return nil, unavailable
	}
	if len(rows) == 0 {
		slog.Warn("no row for today", "table", db.Title, "date", today)
		return nil, empty
	}
	return rows, present
}

// dailyLog normalizes the daily market log table: a capped list of summary
// lines plus the market-strength label.
func dailyLog(source Source, db notion.Database, today string) ([]string, string) {
	rows, avail := queryToday(source, db, colDate, today)
	if avail != present {
		return []string{}, ""
	}

	row := rows[0]
	strength := row.Select(colStrength)

	lines := parse.Lines(row.Text(colSummary))
	if len(lines) > summaryLines {
		lines = lines[:summaryLines]
	}

	slog.Info("daily log normalized", "strength", strength, "lines", len(lines))
	return lines, strength
}

// leaders normalizes the leading-sector and notable-stock pipe rows out of
// the day's single analysis row.
func leaders(source Source, db notion.Database, today string) ([]model.SectorMove, []model.StockHighlight) {
	sectors := []model.SectorMove{}
	stocks := []model.StockHighlight{}

	rows, avail := queryToday(source, db, colStockName, today)
	if avail != present {
		return sectors, stocks
	}
	row := rows[0]

	// "섹터명 | +3.42%"
	for _, parts := range parse.PipeRows(row.Text(colSectors)) {
		if len(parts) < 2 || parts[0] == "" {
			continue
		}
		change := parts[1]
		if change != "" && !strings.HasPrefix(change, "+") && !strings.HasPrefix(change, "-") {
			change = "+" + change
		}
		value, ok := parse.Float(change)
		if !ok {
			slog.Warn("unparseable sector change kept as 0", "sector", parts[0], "change", parts[1])
		}
		sectors = append(sectors, model.SectorMove{Name: parts[0], Change: change, Value: value})
	}

	// "종목명 | 사유 | 가격 | 등락률"
	for _, parts := range parse.PipeRows(row.Text(colStocks)) {
		if len(parts) < 4 || parts[0] == "" {
			continue
		}
		change := parts[3]
		stocks = append(stocks, model.StockHighlight{
			Name:   parts[0],
			Reason: parts[1],
			Price:  parts[2],
			Change: change,
			Pos:    !strings.HasPrefix(strings.TrimSpace(change), "-"),
		})
	}

	slog.Info("leaders normalized", "sectors", len(sectors), "stocks", len(stocks))
	return sectors, stocks
}

// news normalizes the news digest. The row's title embeds the date inside a
// longer string ("2026-02-20 핵심 뉴스 요약"), so matching is by substring.
func news(source Source, db notion.Database, today string) []model.NewsItem {
	items := []model.NewsItem{}

	rows, err := source.QueryByTitleContains(db.ID, colNewsTitle, today, newsQueryLimit)
	if err != nil {
		slog.Error("table query failed", "table", db.Title, "error", err)
		return items
	}
	if len(rows) == 0 {
		slog.Warn("no row for today", "table", db.Title, "date", today)
		return items
	}

	raw := strings.TrimSpace(rows[0].Text(colNewsBody))
	if raw == "" {
		slog.Warn("news row has no body", "table", db.Title, "date", today)
		return items
	}

	for _, line := range parse.Lines(raw) {
		items = append(items, model.NewsItem{Headline: line})
	}

	slog.Info("news normalized", "items", len(items))
	return items
}

// picks normalizes the stock-pick table: up to five rows, rows without a
// name dropped, the first kept row featured.
func picks(source Source, db notion.Database, today string) []model.Recommendation {
	recs := []model.Recommendation{}

	rows, avail := queryToday(source, db, colDate, today)
	if avail != present {
		return recs
	}
	if len(rows) > maxPicks {
		rows = rows[:maxPicks]
	}

	for _, row := range rows {
		name := row.Text(colStockName)
		if name == "" {
			continue
		}

		grade := row.Select(colGrade)
		if grade == "" {
			grade = "B"
		}
		timeframe := row.Select(colTimeframe)
		if timeframe == "" {
			timeframe = "—"
		}

		recs = append(recs, model.Recommendation{
			Name:      name,
			Grade:     grade,
			Timeframe: timeframe,
			Reason:    row.Text(colReason),
			Featured:  len(recs) == 0,
		})
	}

	slog.Info("picks normalized", "count", len(recs))
	return recs
}
