package repository

import (
	"context"

	"recarma/internal/domain/pickup"
	"recarma/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PickupRepository struct {
	db *pgxpool.Pool
}

func NewPickupRepository(db *pgxpool.Pool) *PickupRepository {
	return &PickupRepository{db: db}
}

// Create inserts the pickup inside the caller's transaction. The unique
// index on vehicle_id rejects a second active pickup for the same vehicle.
func (r *PickupRepository) Create(ctx context.Context, tx infra.DBTX, p *pickup.Pickup) error {
	const query = `
		INSERT INTO pickups (id, vehicle_id, pickup_date, slot, created_at)
		VALUES ($1, $2, $3, $4, now())`

	_, err := tx.Exec(ctx, query, p.ID(), p.VehicleID(), p.Date().Value(), p.Slot().String())
	if err != nil {
		if infra.IsUniqueViolation(err) {
			return infra.WrapRepoErr("pickup already scheduled for vehicle", err, infra.KindDuplicateKey)
		}
		if infra.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("vehicle does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create pickup", err)
	}
	return nil
}
