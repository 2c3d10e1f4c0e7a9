package readstore

import (
	"context"

	"recarma/internal/infra"
	"recarma/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VehicleReadStore struct {
	db *pgxpool.Pool
}

func NewVehicleReadStore(db *pgxpool.Pool) *VehicleReadStore {
	return &VehicleReadStore{db: db}
}

const vehicleViewColumns = `
	id, owner_id, make, model, year, condition_score, status, pickup_date, pickup_slot, created_at, updated_at`

func (r *VehicleReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.VehicleView, error) {
	const query = `
		SELECT ` + vehicleViewColumns + `
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner vehicles", err)
	}
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		view, err := scanVehicleView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vehicle rows", err)
	}

	return views, nil
}

// FindOwnedByID searches only within the given owner's collection; a
// vehicle belonging to someone else is indistinguishable from a missing
// one.
func (r *VehicleReadStore) FindOwnedByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.VehicleView, error) {
	const query = `
		SELECT ` + vehicleViewColumns + `
		FROM vehicles
		WHERE owner_id = $1 AND id = $2`

	view, err := scanVehicleView(r.db.QueryRow(ctx, query, ownerID, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find owned vehicle", err)
	}

	return view, nil
}

func scanVehicleView(row pgx.Row) (*queries.VehicleView, error) {
	var view queries.VehicleView
	err := row.Scan(
		&view.ID, &view.OwnerID, &view.Make, &view.Model, &view.Year, &view.ConditionScore,
		&view.Status, &view.PickupDate, &view.PickupSlot, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
