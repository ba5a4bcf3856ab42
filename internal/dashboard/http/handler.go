package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resbook/resource-booking-backend/internal/dashboard"
	"github.com/resbook/resource-booking-backend/internal/pkg/response"
	rsvHttp "github.com/resbook/resource-booking-backend/internal/reservation/http"
)

type SummaryResponse struct {
	Today    []rsvHttp.ReservationResponse `json:"today"`
	Upcoming []rsvHttp.ReservationResponse `json:"upcoming"`
}

type Handler struct {
	service dashboard.Service
}

func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := SummaryResponse{
		Today:    make([]rsvHttp.ReservationResponse, len(summary.Today)),
		Upcoming: make([]rsvHttp.ReservationResponse, len(summary.Upcoming)),
	}
	for i, rsv := range summary.Today {
		resp.Today[i] = rsvHttp.NewReservationResponse(rsv)
	}
	for i, rsv := range summary.Upcoming {
		resp.Upcoming[i] = rsvHttp.NewReservationResponse(rsv)
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers the dashboard route.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/dashboard", h.Summary)
}
