package config

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NOTION_TOKEN", "")
	t.Setenv("NOTION_PAGE_ID", "")
	t.Setenv("OUTPUT_PATH", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "", cfg.NotionToken)
	assert.Equal(t, "", cfg.NotionPageID)
	assert.Equal(t, "data.json", cfg.OutputPath)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoad_StripsPageIDHyphens(t *testing.T) {
	t.Setenv("NOTION_PAGE_ID", "2f26af9a-2aa0-4b9d-8f11-0c3a9e7b5d21")

	cfg := Load()

	assert.Equal(t, "2f26af9a2aa04b9d8f110c3a9e7b5d21", cfg.NotionPageID)
}
