// Package api is the HTTP surface of the vehicle registry.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/openfleet/vehicle-registry/internal/store"
	"github.com/openfleet/vehicle-registry/pkg/models"
)

var validate = validator.New()

// VehicleStore is what the handlers need from the data access layer.
type VehicleStore interface {
	List(ctx context.Context, vin, make *string) ([]models.Vehicle, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	CountByVIN(ctx context.Context, vin string) (int, error)
	Insert(ctx context.Context, vehicle *models.Vehicle) (*store.Inserted, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Server wires the gin router to the vehicle store.
type Server struct {
	router   *gin.Engine
	logger   *zap.Logger
	vehicles VehicleStore
}

// NewServer creates the API server with an injected store handle.
func NewServer(logger *zap.Logger, vehicles VehicleStore) *Server {
	server := &Server{
		logger:   logger,
		vehicles: vehicles,
	}

	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(requestMetrics())

	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	server.router = router
	server.registerRoutes()
	return server
}

// Router returns the internal gin engine for testing purposes.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) registerRoutes() {
	s.router.GET("/ping", s.ping)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/vehicles", s.listVehicles)
		v1.POST("/vehicles", s.createVehicle)
		v1.GET("/vehicles/:id", s.getVehicle)
		v1.DELETE("/vehicles/:id", s.deleteVehicle)
	}
}

// ping answers the health check.
func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ping": "pong"})
}
