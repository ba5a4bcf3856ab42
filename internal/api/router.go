package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/resbook/resource-booking-backend/internal/dashboard"
	dashHttp "github.com/resbook/resource-booking-backend/internal/dashboard/http"
	"github.com/resbook/resource-booking-backend/internal/reservation"
	rsvHttp "github.com/resbook/resource-booking-backend/internal/reservation/http"
	"github.com/resbook/resource-booking-backend/internal/resource"
	resHttp "github.com/resbook/resource-booking-backend/internal/resource/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	ResourceService    resource.Service
	ReservationService reservation.Service
	DashboardService   dashboard.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	resHandler := resHttp.NewHandler(cfg.ResourceService)
	rsvHandler := rsvHttp.NewHandler(cfg.ReservationService)
	dashHandler := dashHttp.NewHandler(cfg.DashboardService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		resHttp.RegisterRoutes(v1, resHandler)
		rsvHttp.RegisterRoutes(v1, rsvHandler)
		dashHttp.RegisterRoutes(v1, dashHandler)
	}

	return r
}
