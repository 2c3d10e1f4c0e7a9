package pickup

import (
	"time"

	"github.com/google/uuid"
)

// Pickup is the scheduling record tying a vehicle to a collection date and
// slot. It is created once by the owner and never mutated afterwards; a
// vehicle has at most one active pickup.
type Pickup struct {
	id        uuid.UUID
	vehicleID uuid.UUID
	date      Date
	slot      Slot
	createdAt time.Time
}

func NewPickup(vehicleID uuid.UUID, date Date, slot Slot) *Pickup {
	return &Pickup{
		id:        uuid.New(),
		vehicleID: vehicleID,
		date:      date,
		slot:      slot,
	}
}

// ReconstructPickup rebuilds a persisted pickup; stored values are trusted.
func ReconstructPickup(id, vehicleID uuid.UUID, date time.Time, slot string, createdAt time.Time) *Pickup {
	return &Pickup{
		id:        id,
		vehicleID: vehicleID,
		date:      Date{value: date},
		slot:      Slot(slot),
		createdAt: createdAt,
	}
}

func (p *Pickup) ID() uuid.UUID        { return p.id }
func (p *Pickup) VehicleID() uuid.UUID { return p.vehicleID }
func (p *Pickup) Date() Date           { return p.date }
func (p *Pickup) Slot() Slot           { return p.slot }
func (p *Pickup) CreatedAt() time.Time { return p.createdAt }
