package vehicle

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is the canonical disposal case. It is created by an owner in
// stage CREATED and mutated only by pickup scheduling and status
// transitions; it is never deleted.
type Vehicle struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	description Description
	year        Year
	condition   ConditionScore
	status      Status
	pickup      *PickupSchedule
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVehicle(ownerID uuid.UUID, description Description, year Year, condition ConditionScore) *Vehicle {
	return &Vehicle{
		id:          uuid.New(),
		ownerID:     ownerID,
		description: description,
		year:        year,
		condition:   condition,
		status:      StatusCreated,
	}
}

// ReconstructVehicle rebuilds a persisted vehicle. Stored values are
// trusted; validation happened at creation time.
func ReconstructVehicle(
	id, ownerID uuid.UUID,
	makeName, model string,
	year, condition int,
	status Status,
	pickup *PickupSchedule,
	createdAt, updatedAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:          id,
		ownerID:     ownerID,
		description: Description{make: makeName, model: model},
		year:        Year{value: year},
		condition:   ConditionScore{value: condition},
		status:      status,
		pickup:      pickup,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// MarkPickupScheduled advances the vehicle into PICKUP_SCHEDULED and
// records the schedule. Only meaningful from CREATED; the scheduling
// usecase enforces that precondition.
func (v *Vehicle) MarkPickupScheduled(schedule PickupSchedule) {
	v.status = StatusPickupScheduled
	v.pickup = &schedule
}

// SetStatus applies a dealer transition. Validity of the target against
// the registry and against the forward path is decided by the caller.
func (v *Vehicle) SetStatus(s Status) {
	v.status = s
}

func (v *Vehicle) IsScheduled() bool {
	return v.pickup != nil
}

func (v *Vehicle) ID() uuid.UUID            { return v.id }
func (v *Vehicle) OwnerID() uuid.UUID       { return v.ownerID }
func (v *Vehicle) Description() Description { return v.description }
func (v *Vehicle) Year() Year               { return v.year }
func (v *Vehicle) Condition() ConditionScore {
	return v.condition
}
func (v *Vehicle) Status() Status          { return v.status }
func (v *Vehicle) Pickup() *PickupSchedule { return v.pickup }
func (v *Vehicle) CreatedAt() time.Time    { return v.createdAt }
func (v *Vehicle) UpdatedAt() time.Time    { return v.updatedAt }
