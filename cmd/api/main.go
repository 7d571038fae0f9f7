package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/flagon1004/market-dashboard/internal/config"
	"github.com/flagon1004/market-dashboard/internal/handler"
	"github.com/flagon1004/market-dashboard/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	repo := repository.NewDashboardRepository(cfg.OutputPath)
	dashboardHandler := handler.NewDashboardHandler(repo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/dashboard", dashboardHandler.GetDashboard)
	r.GET("/health", dashboardHandler.GetHealth)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
