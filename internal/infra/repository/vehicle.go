package repository

import (
	"context"
	"time"

	"recarma/internal/domain/vehicle"
	"recarma/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleRepository struct {
	db *pgxpool.Pool
}

func NewVehicleRepository(db *pgxpool.Pool) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	const query = `
		INSERT INTO vehicles (id, owner_id, make, model, year, condition_score, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())`

	_, err := r.db.Exec(ctx, query,
		v.ID(), v.OwnerID(), v.Description().Make(), v.Description().Model(),
		v.Year().Value(), v.Condition().Value(), v.Status().String())
	if err != nil {
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("owner does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	const query = `
		SELECT id, owner_id, make, model, year, condition_score, status, pickup_date, pickup_slot, created_at, updated_at
		FROM vehicles
		WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)

	var (
		vehicleID, ownerID   uuid.UUID
		makeName, model      string
		year, condition      int
		status               string
		pickupDate           *time.Time
		pickupSlot           *string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&vehicleID, &ownerID, &makeName, &model, &year, &condition,
		&status, &pickupDate, &pickupSlot, &createdAt, &updatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}

	var schedule *vehicle.PickupSchedule
	if pickupDate != nil && pickupSlot != nil {
		s := vehicle.NewPickupSchedule(*pickupDate, *pickupSlot)
		schedule = &s
	}

	return vehicle.ReconstructVehicle(
		vehicleID, ownerID, makeName, model, year, condition,
		vehicle.Status(status), schedule, createdAt, updatedAt,
	), nil
}

func (r *VehicleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status vehicle.Status) error {
	const query = `
		UPDATE vehicles
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update vehicle status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VehicleRepository) MarkPickupScheduled(ctx context.Context, tx infra.DBTX, v *vehicle.Vehicle) error {
	const query = `
		UPDATE vehicles
		SET status = $2, pickup_date = $3, pickup_slot = $4, updated_at = now()
		WHERE id = $1`

	schedule := v.Pickup()
	if schedule == nil {
		return infra.WrapRepoErr("vehicle has no pickup schedule", nil)
	}

	tag, err := tx.Exec(ctx, query, v.ID(), v.Status().String(), schedule.Date(), schedule.Slot())
	if err != nil {
		return infra.WrapRepoErr("failed to mark vehicle pickup scheduled", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("vehicle not found", nil, infra.KindNotFound)
	}
	return nil
}
