package readstore

import (
	"context"

	"recarma/internal/infra"
	"recarma/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PickupReadStore struct {
	db *pgxpool.Pool
}

func NewPickupReadStore(db *pgxpool.Pool) *PickupReadStore {
	return &PickupReadStore{db: db}
}

const pickupViewQuery = `
	SELECT p.id, p.vehicle_id, p.pickup_date, p.slot, p.created_at,
	       v.id, v.owner_id, v.make, v.model, v.year, v.condition_score,
	       v.status, v.pickup_date, v.pickup_slot, v.created_at, v.updated_at,
	       u.id, u.name, u.email
	FROM pickups p
	JOIN vehicles v ON v.id = p.vehicle_id
	JOIN users u ON u.id = v.owner_id`

func (r *PickupReadStore) FindAll(ctx context.Context) ([]*queries.PickupView, error) {
	query := pickupViewQuery + `
	ORDER BY p.pickup_date ASC, p.created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pickups", err)
	}
	defer rows.Close()

	var views []*queries.PickupView
	for rows.Next() {
		view, err := scanPickupView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pickup row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pickup rows", err)
	}

	return views, nil
}

func (r *PickupReadStore) FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*queries.PickupView, error) {
	query := pickupViewQuery + `
	WHERE p.vehicle_id = $1`

	view, err := scanPickupView(r.db.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pickup not found for vehicle", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pickup by vehicle", err)
	}

	return view, nil
}

func scanPickupView(row pgx.Row) (*queries.PickupView, error) {
	var (
		view    queries.PickupView
		vehicle queries.VehicleView
		owner   queries.OwnerProfileView
	)
	err := row.Scan(
		&view.ID, &view.VehicleID, &view.PickupDate, &view.Slot, &view.CreatedAt,
		&vehicle.ID, &vehicle.OwnerID, &vehicle.Make, &vehicle.Model, &vehicle.Year, &vehicle.ConditionScore,
		&vehicle.Status, &vehicle.PickupDate, &vehicle.PickupSlot, &vehicle.CreatedAt, &vehicle.UpdatedAt,
		&owner.ID, &owner.Name, &owner.Email,
	)
	if err != nil {
		return nil, err
	}
	view.Vehicle = &vehicle
	view.Owner = &owner
	return &view, nil
}
