package api

import (
	"errors"
	"net/http"

	"recarma/internal/domain/vehicle"
	reqdto "recarma/internal/handler/dto/request"
	resdto "recarma/internal/handler/dto/response"
	"recarma/internal/handler/middleware"
	"recarma/internal/usecase/commands"
	"recarma/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehicleHandler struct {
	vehicleCommands commands.VehicleCommands
	vehicleQueries  queries.VehicleQueries
}

func NewVehicleHandler(vehicleCommands commands.VehicleCommands, vehicleQueries queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{
		vehicleCommands: vehicleCommands,
		vehicleQueries:  vehicleQueries,
	}
}

// @Summary Register vehicle
// @Description Register a vehicle for end-of-life disposal
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateVehicleRequest true "Vehicle request"
// @Success 201 {object} resdto.VehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.vehicleCommands.CreateVehicle(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, vehicle.ErrInvalidConditionScore):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Condition score must be between 1 and 10",
			})
		case errors.Is(err, vehicle.ErrImplausibleYear):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Year must be a plausible 4-digit year",
			})
		case errors.Is(err, vehicle.ErrEmptyMake), errors.Is(err, vehicle.ErrEmptyModel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Make and model are required",
			})
		default:
			writeUnhandled(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List my vehicles
// @Description List all vehicles registered by the current owner
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Failure 401 {object} map[string]string
// @Router /vehicles/my [get]
func (h *VehicleHandler) ListMyVehicles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.vehicleQueries.ListMine(c.Request.Context(), userID)
	if err != nil {
		writeUnhandled(c, err)
		return
	}

	if views == nil {
		views = []*queries.VehicleView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get vehicle
// @Description Get a vehicle by ID, scoped to the caller's role
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} resdto.VehicleDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	view, err := h.vehicleQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, queries.ErrRoleNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		default:
			writeUnhandled(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update vehicle status
// @Description Set a vehicle's lifecycle stage (dealer only)
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body reqdto.UpdateStatusRequest true "Status request"
// @Success 200 {object} resdto.UpdateStatusResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vehicles/{id}/status [patch]
func (h *VehicleHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid vehicle ID format",
		})
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.vehicleCommands.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStatusUpdateForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only dealers may update vehicle status",
			})
		case errors.Is(err, vehicle.ErrUnknownStatus):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown vehicle status",
			})
		case errors.Is(err, commands.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Transition not allowed from current stage",
			})
		default:
			writeUnhandled(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUpdateStatusResult(result))
}
