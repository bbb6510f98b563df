package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/openfleet/vehicle-registry/api"
	"github.com/openfleet/vehicle-registry/internal/store"
	"github.com/openfleet/vehicle-registry/pkg/models"
)

// stubVehicles implements api.VehicleStore and records what the handlers
// asked for.
type stubVehicles struct {
	listRows  []models.Vehicle
	listErr   error
	listCalls int
	lastVIN   *string
	lastMake  *string

	getVehicle *models.Vehicle
	getErr     error
	getCalls   int

	vinCount int
	countErr error

	inserted  *models.Vehicle
	insertRes *store.Inserted
	insertErr error

	deleteAffected int64
	deleteErr      error
	deleteCalls    int
}

func (s *stubVehicles) List(ctx context.Context, vin, make *string) ([]models.Vehicle, error) {
	s.listCalls++
	s.lastVIN, s.lastMake = vin, make
	return s.listRows, s.listErr
}

func (s *stubVehicles) Get(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	s.getCalls++
	return s.getVehicle, s.getErr
}

func (s *stubVehicles) CountByVIN(ctx context.Context, vin string) (int, error) {
	return s.vinCount, s.countErr
}

func (s *stubVehicles) Insert(ctx context.Context, vehicle *models.Vehicle) (*store.Inserted, error) {
	copied := *vehicle
	s.inserted = &copied
	return s.insertRes, s.insertErr
}

func (s *stubVehicles) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	s.deleteCalls++
	return s.deleteAffected, s.deleteErr
}

// setupRouter builds a test router around the stub.
func setupRouter(vehicles *stubVehicles) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	return api.NewServer(logger, vehicles).Router()
}

func doRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

func TestPing(t *testing.T) {
	router := setupRouter(&stubVehicles{})
	w := doRequest(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ping":"pong"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(&stubVehicles{})
	doRequest(router, http.MethodGet, "/ping", nil)
	w := doRequest(router, http.MethodGet, "/metrics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}
