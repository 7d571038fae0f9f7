package config

import (
	"os"
	"strings"
)

// Config carries every environment-derived setting, read once in main and
// passed down so nothing else touches ambient state.
type Config struct {
	NotionToken  string
	NotionPageID string
	OutputPath   string
	FetchCron    string
	Port         string
	FrontendURL  string
}

func Load() Config {
	return Config{
		NotionToken: os.Getenv("NOTION_TOKEN"),
		// page IDs are accepted with or without hyphens
		NotionPageID: strings.ReplaceAll(os.Getenv("NOTION_PAGE_ID"), "-", ""),
		OutputPath:   getEnv("OUTPUT_PATH", "data.json"),
		FetchCron:    os.Getenv("FETCH_CRON"),
		Port:         getEnv("PORT", "8080"),
		FrontendURL:  os.Getenv("FRONTEND_URL"),
	}
}

func getEnv(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}
