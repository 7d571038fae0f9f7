package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flagon1004/market-dashboard/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeStore struct {
	dashboard *model.Dashboard
	err       error
}

func (f *fakeStore) Load() (*model.Dashboard, error) {
	return f.dashboard, f.err
}

func newTestRouter(store DashboardStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewDashboardHandler(store)
	r.GET("/dashboard", h.GetDashboard)
	r.GET("/health", h.GetHealth)
	return r
}

func TestGetDashboard_ReturnsDocument(t *testing.T) {
	store := &fakeStore{
		dashboard: &model.Dashboard{
			UpdatedAt:      "2026-02-20T06:30:00Z",
			MarketStrength: "강세",
			Summary:        []string{"코스피 상승"},
			Sectors:        []model.SectorMove{},
			Stocks:         []model.StockHighlight{},
			News:           []model.NewsItem{},
			Recommendations: []model.Recommendation{
				{Name: "삼성전자", Grade: "A+", Featured: true},
			},
			Indices: map[string]model.IndexQuote{"kospi": {Price: 2700, Pos: true}},
		},
	}

	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "강세", res["market_strength"])
	assert.Equal(t, "2026-02-20T06:30:00Z", res["updated_at"])

	recs := res["recommendations"].([]interface{})
	assert.Equal(t, 1, len(recs))
	assert.Equal(t, true, recs[0].(map[string]interface{})["featured"])
}

func TestGetDashboard_NotGeneratedYet(t *testing.T) {
	store := &fakeStore{err: errors.New("no such file")}
	r := newTestRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetHealth(t *testing.T) {
	r := newTestRouter(&fakeStore{dashboard: &model.Dashboard{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetHealth_MissingDocument(t *testing.T) {
	r := newTestRouter(&fakeStore{err: errors.New("no such file")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
