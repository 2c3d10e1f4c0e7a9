package api

import (
	"errors"
	"net/http"

	"recarma/internal/domain/pickup"
	reqdto "recarma/internal/handler/dto/request"
	"recarma/internal/handler/middleware"
	"recarma/internal/usecase/commands"
	"recarma/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PickupHandler struct {
	pickupCommands commands.PickupCommands
	pickupQueries  queries.PickupQueries
}

func NewPickupHandler(pickupCommands commands.PickupCommands, pickupQueries queries.PickupQueries) *PickupHandler {
	return &PickupHandler{
		pickupCommands: pickupCommands,
		pickupQueries:  pickupQueries,
	}
}

// @Summary Schedule pickup
// @Description Schedule a pickup for a registered vehicle
// @Tags pickups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SchedulePickupRequest true "Pickup request"
// @Success 201 {object} resdto.PickupResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /pickups [post]
func (h *PickupHandler) SchedulePickup(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SchedulePickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.pickupCommands.Schedule(c.Request.Context(), userID, req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Pickup can only be scheduled for a newly registered vehicle",
			})
		case errors.Is(err, commands.ErrPickupAlreadyScheduled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Pickup is already scheduled for this vehicle",
			})
		case errors.Is(err, pickup.ErrDateInPast), errors.Is(err, pickup.ErrZeroPickupDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Pickup date cannot be in the past",
			})
		case errors.Is(err, pickup.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid pickup slot",
			})
		default:
			writeUnhandled(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary List assigned pickups
// @Description List pickups assigned to the current dealer
// @Tags pickups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PickupResponse
// @Failure 401 {object} map[string]string
// @Router /pickups [get]
func (h *PickupHandler) ListPickups(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.pickupQueries.ListAssigned(c.Request.Context(), userID)
	if err != nil {
		writeUnhandled(c, err)
		return
	}

	if views == nil {
		views = []*queries.PickupView{}
	}
	c.JSON(http.StatusOK, views)
}
