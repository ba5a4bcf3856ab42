package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resbook/resource-booking-backend/internal/api"
	"github.com/resbook/resource-booking-backend/internal/dashboard"
	"github.com/resbook/resource-booking-backend/internal/reservation"
	"github.com/resbook/resource-booking-backend/internal/resource"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	QueryTimeout time.Duration
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Resource Module
	resRepo := resource.NewPgxRepository(cfg.DBPool, cfg.QueryTimeout)
	resService := resource.NewService(resRepo)

	// Reservation Module
	rsvRepo := reservation.NewPgxRepository(cfg.DBPool, cfg.QueryTimeout)
	rsvService := reservation.NewService(rsvRepo, resService, time.Now)

	// Dashboard Module
	dashService := dashboard.NewService(rsvService, time.Now)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		ResourceService:    resService,
		ReservationService: rsvService,
		DashboardService:   dashService,
	})

	return &Container{
		Router: router,
	}
}
