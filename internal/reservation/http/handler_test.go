package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resbook/resource-booking-backend/internal/reservation"
	rsvHttp "github.com/resbook/resource-booking-backend/internal/reservation/http"
)

// stubService returns canned results so the tests can focus on status code
// and payload mapping.
type stubService struct {
	reservation.Service

	created *reservation.Reservation
	err     error
}

func (s *stubService) Create(ctx context.Context, in reservation.Input) (*reservation.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubService) GetByID(ctx context.Context, id string) (*reservation.Reservation, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func newRouter(svc reservation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/v1")
	rsvHttp.RegisterRoutes(v1, rsvHttp.NewHandler(svc))
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	buf, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"resource_id": "2f8b0cb0-5a5a-4a77-9f6e-0f4f4cf1a111",
		"start_time":  time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
		"end_time":    time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC),
		"booked_by":   "Dana",
		"purpose":     "Team sync",
	}
}

func TestCreateReturnsCreated(t *testing.T) {
	svc := &stubService{
		created: &reservation.Reservation{
			ID:           "9e3a27b8-45cf-4a4e-9e75-0c7d8a4a0b22",
			ResourceID:   "2f8b0cb0-5a5a-4a77-9f6e-0f4f4cf1a111",
			ResourceName: "Meeting Room Alpha",
			StartTime:    time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
			EndTime:      time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC),
			BookedBy:     "Dana",
			Purpose:      "Team sync",
			Version:      1,
		},
	}

	w := postJSON(newRouter(svc), "/v1/reservations", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp rsvHttp.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, svc.created.ID, resp.ID)
	assert.Equal(t, "Meeting Room Alpha", resp.Resource.Name)
	assert.Equal(t, int64(1), resp.Version)
}

func TestCreateConflictMapsTo409(t *testing.T) {
	svc := &stubService{err: reservation.ErrConflict}

	w := postJSON(newRouter(svc), "/v1/reservations", validBody())
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestCreateRejectsMalformedBody(t *testing.T) {
	body := validBody()
	body["resource_id"] = "not-a-uuid"

	w := postJSON(newRouter(&stubService{}), "/v1/reservations", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRejectsInvalidID(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/v1/reservations/not-a-uuid", nil)
	w := httptest.NewRecorder()
	newRouter(&stubService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNotFoundMapsTo404(t *testing.T) {
	svc := &stubService{err: reservation.ErrNotFound}

	req, _ := http.NewRequest(http.MethodGet, "/v1/reservations/9e3a27b8-45cf-4a4e-9e75-0c7d8a4a0b22", nil)
	w := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
