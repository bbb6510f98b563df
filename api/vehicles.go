package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openfleet/vehicle-registry/common/apiutil"
	"github.com/openfleet/vehicle-registry/internal/store"
	"github.com/openfleet/vehicle-registry/pkg/models"
)

type vehiclePayload struct {
	VIN   *string `json:"vin"`
	Make  *string `json:"make"`
	Model *string `json:"model"`
	Year  *int32  `json:"year"`
	Notes *string `json:"notes"`
}

type createVehicleRequest struct {
	Vehicle *vehiclePayload `json:"vehicle"`
}

// vehicleJSON renders one row with id and timestamps stringified. The create
// response never carries notes; the detail and list responses do.
func vehicleJSON(v *models.Vehicle, includeNotes bool) gin.H {
	obj := gin.H{
		"id":         v.ID.String(),
		"vin":        v.VIN,
		"make":       v.Make,
		"model":      v.Model,
		"year":       v.Year,
		"created_at": v.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": v.UpdatedAt.Format(time.RFC3339Nano),
	}
	if includeNotes {
		obj["notes"] = v.Notes
	}
	return obj
}

// listVehicles handles GET /api/v1/vehicles. A present vin filter takes
// precedence over a make substring filter; with neither, all rows come back.
// Present-but-empty values still filter (`?vin=` matches no row), so absence
// is tracked separately from the value.
func (s *Server) listVehicles(c *gin.Context) {
	var vin, makeFilter *string
	if v, ok := c.GetQuery("vin"); ok {
		vin = &v
	}
	if m, ok := c.GetQuery("make"); ok {
		makeFilter = &m
	}

	rows, err := s.vehicles.List(c.Request.Context(), vin, makeFilter)
	if err != nil {
		s.logger.Error("list vehicles failed", zap.Error(err))
		apiutil.WriteInternalError(c)
		return
	}

	vehicles := make([]gin.H, 0, len(rows))
	for i := range rows {
		vehicles = append(vehicles, vehicleJSON(&rows[i], true))
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// createVehicle handles POST /api/v1/vehicles.
func (s *Server) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiutil.WriteMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// A missing vehicle object or vin key fails the same way a short vin does.
	if req.Vehicle == nil || req.Vehicle.VIN == nil ||
		validate.Var(*req.Vehicle.VIN, "len=17") != nil {
		apiutil.WriteMessage(c, http.StatusBadRequest, "incorrect vin length")
		return
	}
	payload := req.Vehicle

	notes := models.NotesPlaceholder
	if payload.Notes != nil {
		notes = *payload.Notes
	}
	vehicle := models.Vehicle{
		VIN:   *payload.VIN,
		Make:  payload.Make,
		Model: payload.Model,
		Year:  payload.Year,
		Notes: &notes,
	}

	count, err := s.vehicles.CountByVIN(c.Request.Context(), vehicle.VIN)
	if err != nil {
		s.logger.Error("vin lookup failed", zap.Error(err))
		apiutil.WriteInternalError(c)
		return
	}
	if count != 0 {
		apiutil.WriteMessage(c, http.StatusBadRequest, "duplicate vin")
		return
	}

	if vehicle.Year != nil && *vehicle.Year > 1994 {
		advisory := models.NotesOBDAdvisory
		vehicle.Notes = &advisory
	}

	inserted, err := s.vehicles.Insert(c.Request.Context(), &vehicle)
	if err != nil {
		// The unique constraint backstops the check above when two creates race.
		if store.IsUniqueViolation(err) {
			apiutil.WriteMessage(c, http.StatusBadRequest, "duplicate vin")
			return
		}
		s.logger.Error("insert vehicle failed", zap.Error(err))
		apiutil.WriteInternalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle": gin.H{
		"id":         inserted.ID.String(),
		"vin":        vehicle.VIN,
		"make":       vehicle.Make,
		"model":      vehicle.Model,
		"year":       vehicle.Year,
		"created_at": inserted.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": inserted.UpdatedAt.Format(time.RFC3339Nano),
	}})
}

// getVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) getVehicle(c *gin.Context) {
	id, ok := s.vehicleID(c)
	if !ok {
		return
	}

	vehicle, err := s.vehicles.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNoResult) {
			apiutil.WriteMessage(c, http.StatusNotFound, "vehicle not found")
			return
		}
		s.logger.Error("get vehicle failed", zap.Error(err), zap.String("id", id.String()))
		apiutil.WriteInternalError(c)
		return
	}

	c.JSON(http.StatusOK, vehicleJSON(vehicle, true))
}

// deleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) deleteVehicle(c *gin.Context) {
	id, ok := s.vehicleID(c)
	if !ok {
		return
	}

	affected, err := s.vehicles.Delete(c.Request.Context(), id)
	if err != nil {
		s.logger.Error("delete vehicle failed", zap.Error(err), zap.String("id", id.String()))
		apiutil.WriteInternalError(c)
		return
	}
	if affected == 0 {
		apiutil.WriteMessage(c, http.StatusNotFound, "vehicle not found")
		return
	}

	apiutil.WriteMessage(c, http.StatusOK, "vehicle deleted")
}

// vehicleID parses the :id path parameter, writing the 400 itself when the
// value is not a uuid.
func (s *Server) vehicleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apiutil.WriteMessage(c, http.StatusBadRequest, "vehicle id is not a valid uuid")
		return uuid.UUID{}, false
	}
	return id, true
}
