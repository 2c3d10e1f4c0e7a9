//go:build unit

package commands_test

import (
	"context"

	"recarma/internal/domain/pickup"
	"recarma/internal/domain/vehicle"
	"recarma/internal/infra"
	"recarma/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type fakeVehicleRepo struct {
	vehicles  map[uuid.UUID]*vehicle.Vehicle
	createErr error
	updateErr error
}

func newFakeVehicleRepo(vehicles ...*vehicle.Vehicle) *fakeVehicleRepo {
	repo := &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*vehicle.Vehicle)}
	for _, v := range vehicles {
		repo.vehicles[v.ID()] = v
	}
	return repo
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *vehicle.Vehicle) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.vehicles[v.ID()] = v
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, infra.WrapRepoErr("vehicle not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return v, nil
}

func (f *fakeVehicleRepo) UpdateStatus(_ context.Context, id uuid.UUID, status vehicle.Status) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	v, ok := f.vehicles[id]
	if !ok {
		return infra.WrapRepoErr("vehicle not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	v.SetStatus(status)
	return nil
}

func (f *fakeVehicleRepo) MarkPickupScheduled(_ context.Context, _ infra.DBTX, v *vehicle.Vehicle) error {
	f.vehicles[v.ID()] = v
	return nil
}

type fakePickupRepo struct {
	pickups   []*pickup.Pickup
	createErr error
}

func (f *fakePickupRepo) Create(_ context.Context, _ infra.DBTX, p *pickup.Pickup) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.pickups = append(f.pickups, p)
	return nil
}

type fakeDocumentRepo struct {
	records []commands.DocumentRecord
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc commands.DocumentRecord) (uuid.UUID, error) {
	f.records = append(f.records, doc)
	return uuid.New(), nil
}

type fakeStatusCache struct {
	statuses map[uuid.UUID]vehicle.Status
}

func newFakeStatusCache() *fakeStatusCache {
	return &fakeStatusCache{statuses: make(map[uuid.UUID]vehicle.Status)}
}

func (f *fakeStatusCache) SetStatus(_ context.Context, vehicleID uuid.UUID, status vehicle.Status) {
	f.statuses[vehicleID] = status
}

// fakeTx satisfies pgx.Tx through embedding; only the lifecycle methods
// are implemented because the fake repositories never touch the tx.
type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return pgx.ErrTxClosed }

type fakeTxBeginner struct {
	beginErr error
}

func (f fakeTxBeginner) Begin(context.Context) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return fakeTx{}, nil
}
