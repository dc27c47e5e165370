package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/aguskov/oilpulse/config"
	"github.com/aguskov/oilpulse/internal/api"
	"github.com/aguskov/oilpulse/internal/service"
	"github.com/aguskov/oilpulse/internal/storage"
)

// InitializeApp wires the API-mode dependencies and returns a configured
// Gin router, a cleanup function releasing the database handle, and any
// initialization error.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewTradingResultsRepository(db)
	svc := service.NewTradingService(repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
