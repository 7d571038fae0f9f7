package model

// Dashboard is the single document the display layer reads. Every list
// field is always present, empty when its source had nothing for today.
type Dashboard struct {
	UpdatedAt       string                `json:"updated_at"`
	UpdatedKST      string                `json:"updated_kst"`
	Summary         []string              `json:"summary"`
	MarketStrength  string                `json:"market_strength"`
	Sectors         []SectorMove          `json:"sectors"`
	Stocks          []StockHighlight      `json:"stocks"`
	News            []NewsItem            `json:"news"`
	Recommendations []Recommendation      `json:"recommendations"`
	Indices         map[string]IndexQuote `json:"indices"`
}

// SectorMove is one leading-sector entry. Change always carries an
// explicit sign; Value is its parsed float, 0.0 when unparseable.
type SectorMove struct {
	Name   string  `json:"name"`
	Change string  `json:"change"`
	Value  float64 `json:"value"`
}

// StockHighlight is one notable-stock entry. Price stays a display string.
type StockHighlight struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Price  string `json:"price"`
	Change string `json:"change"`
	Pos    bool   `json:"pos"`
}

type NewsItem struct {
	Time     string `json:"time"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Tag      string `json:"tag"`
}

// Recommendation is one picked stock. Featured marks the day's top pick.
type Recommendation struct {
	Name      string `json:"name"`
	Grade     string `json:"grade"`
	Timeframe string `json:"timeframe"`
	Reason    string `json:"reason"`
	Featured  bool   `json:"featured"`
}

type IndexQuote struct {
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	Pct    float64 `json:"pct"`
	Pos    bool    `json:"pos"`
}
