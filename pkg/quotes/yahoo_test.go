package quotes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func newChartServer(meta map[string]interface{}) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"chart": map[string]interface{}{
				"result": []map[string]interface{}{
					{"meta": meta},
				},
			},
		})
	}))
}

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: &http.Client{Transport: &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}},
	}
}

func TestQuote_ChangeAndPct(t *testing.T) {
	srv := newChartServer(map[string]interface{}{
		"regularMarketPrice": 100.0,
		"chartPreviousClose": 95.0,
	})
	defer srv.Close()

	q, err := newTestClient(srv).Quote("^GSPC", 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 100.0, q.Price)
	assert.Equal(t, 5.0, q.Change)
	assert.Equal(t, 5.26, q.Pct)
	assert.Equal(t, true, q.Pos)
}

func TestQuote_FallsBackToPreviousClose(t *testing.T) {
	srv := newChartServer(map[string]interface{}{
		"regularMarketPrice": 90.0,
		"previousClose":      100.0,
	})
	defer srv.Close()

	q, err := newTestClient(srv).Quote("^KS11", 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, -10.0, q.Change)
	assert.Equal(t, -10.0, q.Pct)
	assert.Equal(t, false, q.Pos)
}

func TestQuote_NoPreviousCloseMeansZeroChange(t *testing.T) {
	srv := newChartServer(map[string]interface{}{
		"regularMarketPrice": 1340.5,
	})
	defer srv.Close()

	q, err := newTestClient(srv).Quote("KRW=X", 1)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1340.5, q.Price)
	assert.Equal(t, 0.0, q.Change)
	assert.Equal(t, 0.0, q.Pct)
	assert.Equal(t, true, q.Pos)
}

func TestQuote_ZeroPriceNoDivisionByZero(t *testing.T) {
	srv := newChartServer(map[string]interface{}{
		"regularMarketPrice": 0.0,
		"chartPreviousClose": 0.0,
	})
	defer srv.Close()

	q, err := newTestClient(srv).Quote("GC=F", 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0.0, q.Pct)
	assert.Equal(t, true, q.Pos)
}

func TestQuote_RoundsToSymbolDecimals(t *testing.T) {
	srv := newChartServer(map[string]interface{}{
		"regularMarketPrice": 4.2857,
		"chartPreviousClose": 4.1234,
	})
	defer srv.Close()

	q, err := newTestClient(srv).Quote("^TNX", 3)

	assert.Equal(t, nil, err)
	assert.Equal(t, 4.286, q.Price)
	assert.Equal(t, 0.162, q.Change)
	assert.Equal(t, 3.94, q.Pct)
}

func TestQuote_EmptyResultIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"chart": map[string]interface{}{"result": []interface{}{}},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Quote("^KQ11", 0)
	assert.NotEqual(t, nil, err)
}

func TestQuote_HTTPErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Quote("CL=F", 2)
	assert.NotEqual(t, nil, err)
}

func TestTargets_FixedSetOfEight(t *testing.T) {
	assert.Equal(t, 8, len(Targets))

	keys := make([]string, len(Targets))
	for i, tgt := range Targets {
		keys[i] = tgt.Key
	}
	assert.Equal(t, []string{"kospi", "kosdaq", "sp500", "nasdaq", "usdkrw", "us10y", "wti", "gold"}, keys)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
