package pipeline

import (
	"github.com/flagon1004/market-dashboard/pkg/notion"
	"github.com/flagon1004/market-dashboard/pkg/quotes"
)

// Source is the document store the pipeline reads from, satisfied by
// *notion.Client.
type Source interface {
	ChildDatabases(pageID string) ([]notion.Database, error)
	QueryByDate(dbID, col, date string) ([]notion.Page, error)
	QueryByTitleContains(dbID, col, substr string, limit int) ([]notion.Page, error)
}

// Feed is the market-data feed, satisfied by *quotes.Client.
type Feed interface {
	Quote(symbol string, decimals int) (quotes.Quote, error)
}

// Role names what a discovered table means to the pipeline. Binding is by
// position on the page, never by title.
type Role int

const (
	RoleDailyLog Role = iota // market strength + 3-line summary, one row per day
	RoleLeaders              // leading sectors + notable stocks, one row per day
	RoleNews                 // news digest, one row per day, date embedded in title
	RolePicks                // stock picks, up to five rows per day
)

const tableCount = 4

var roleOrder = [tableCount]Role{RoleDailyLog, RoleLeaders, RoleNews, RolePicks}

func bindRoles(dbs []notion.Database) map[Role]notion.Database {
	bound := make(map[Role]notion.Database, tableCount)
	for i, role := range roleOrder {
		if i < len(dbs) {
			bound[role] = dbs[i]
		}
	}
	return bound
}
