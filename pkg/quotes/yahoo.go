package quotes

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"
)

const chartBaseURL = "https://query1.finance.yahoo.com"

// Target binds a dashboard index key to its feed symbol and the decimal
// count its price and change are rounded to.
type Target struct {
	Key      string
	Symbol   string
	Decimals int
}

// Targets is the fixed set of dashboard indices, in display order.
var Targets = []Target{
	{"kospi", "^KS11", 0},
	{"kosdaq", "^KQ11", 0},
	{"sp500", "^GSPC", 0},
	{"nasdaq", "^IXIC", 0},
	{"usdkrw", "KRW=X", 1},
	{"us10y", "^TNX", 3},
	{"wti", "CL=F", 2},
	{"gold", "GC=F", 0},
}

// Quote is one index snapshot derived from the feed's chart metadata.
type Quote struct {
	Price  float64
	Change float64
	Pct    float64
	Pos    bool
}

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Quote fetches the current price and previous close for a symbol and
// derives change and percent change. Price and change are rounded to the
// given decimal count, percent always to two.
func (c *Client) Quote(symbol string, decimals int) (Quote, error) {
	addr := fmt.Sprintf(
		"%s/v8/finance/chart/%s?interval=1d&range=2d",
		chartBaseURL, url.PathEscape(symbol),
	)

	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("yahoo request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("yahoo chart %s: %s", symbol, resp.Status)
	}

	var raw chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Quote{}, fmt.Errorf("yahoo decode: %w", err)
	}
	if len(raw.Chart.Result) == 0 {
		return Quote{}, fmt.Errorf("yahoo chart %s: empty result", symbol)
	}

	meta := raw.Chart.Result[0].Meta
	price := meta.RegularMarketPrice

	prev := meta.ChartPreviousClose
	if prev == 0 {
		prev = meta.PreviousClose
	}
	if prev == 0 {
		prev = price
	}

	change := price - prev
	pct := 0.0
	if prev != 0 {
		pct = change / prev * 100
	}

	return Quote{
		Price:  round(price, decimals),
		Change: round(change, decimals),
		Pct:    round(pct, 2),
		Pos:    change >= 0,
	}, nil
}

func round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta chartMeta `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

type chartMeta struct {
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
	PreviousClose      float64 `json:"previousClose"`
}
