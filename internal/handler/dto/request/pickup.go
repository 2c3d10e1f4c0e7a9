package request

import (
	"time"

	"recarma/internal/usecase/commands"

	"github.com/google/uuid"
)

const pickupDateLayout = "2006-01-02"

// SchedulePickupRequest carries the pickup booking. The date arrives as a
// bare calendar day, the way a date input submits it.
type SchedulePickupRequest struct {
	VehicleID  uuid.UUID `json:"vehicle_id" binding:"required"`
	PickupDate string    `json:"pickup_date" binding:"required,datetime=2006-01-02"`
	Slot       string    `json:"slot" binding:"required"`
}

func (r SchedulePickupRequest) ToParams() commands.SchedulePickupParams {
	// The datetime binding tag guarantees the layout; a failed parse leaves
	// the zero time, which the domain rejects.
	date, _ := time.Parse(pickupDateLayout, r.PickupDate)
	return commands.SchedulePickupParams{
		VehicleID:  r.VehicleID,
		PickupDate: date,
		Slot:       r.Slot,
	}
}
