package commands

import (
	"context"

	"recarma/internal/domain/pickup"
	"recarma/internal/domain/vehicle"
	"recarma/internal/infra"

	"github.com/google/uuid"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status vehicle.Status) error
	// MarkPickupScheduled persists the scheduling half of the pickup
	// transaction: status advance plus date/slot in one statement.
	MarkPickupScheduled(ctx context.Context, tx infra.DBTX, v *vehicle.Vehicle) error
}

type PickupRepository interface {
	Create(ctx context.Context, tx infra.DBTX, p *pickup.Pickup) error
}

type DocumentRepository interface {
	Create(ctx context.Context, doc DocumentRecord) (uuid.UUID, error)
}

type DocumentRecord struct {
	VehicleID uuid.UUID
	OwnerID   uuid.UUID
	Type      string
	FileName  string
	Content   []byte
}

// StatusCache mirrors the latest lifecycle stage into a fast store for
// dashboard polling. Failures are logged, never surfaced: the database
// row stays authoritative.
type StatusCache interface {
	SetStatus(ctx context.Context, vehicleID uuid.UUID, status vehicle.Status)
}
