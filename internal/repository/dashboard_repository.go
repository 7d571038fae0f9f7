package repository

import (
	"encoding/json"
	"os"

	"github.com/flagon1004/market-dashboard/internal/model"
)

// DashboardRepository stores the dashboard document as one JSON file,
// overwritten wholesale on every run.
type DashboardRepository struct {
	path string
}

func NewDashboardRepository(path string) *DashboardRepository {
	return &DashboardRepository{path: path}
}

func (r *DashboardRepository) Save(d *model.Dashboard) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	// write-then-rename so the API never reads a half-written document
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *DashboardRepository) Load() (*model.Dashboard, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	var d model.Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
