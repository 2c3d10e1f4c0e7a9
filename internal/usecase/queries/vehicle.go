package queries

import (
	"context"

	"recarma/internal/domain/user"
	"recarma/internal/domain/vehicle"
	"recarma/internal/infra"
	"recarma/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound = errs.New("vehicle not found")
	ErrRoleNotAllowed  = errs.New("role not allowed")
)

type VehicleReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
	FindOwnedByID(ctx context.Context, ownerID, id uuid.UUID) (*VehicleView, error)
}

type PickupReadStore interface {
	FindAll(ctx context.Context) ([]*PickupView, error)
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*PickupView, error)
}

// StatusReader answers status lookups from the fast store. A miss is not
// an error; the caller falls back to the row it already read.
type StatusReader interface {
	GetStatus(ctx context.Context, vehicleID uuid.UUID) (vehicle.Status, bool)
}

type VehicleQueries interface {
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*VehicleDetailView, error)
}

// vehicleLookup is one retrieval strategy; the role decides which one runs.
// Owners only ever search their own collection, dealers only their
// assigned pickups, so neither can reach the other's records.
type vehicleLookup interface {
	find(ctx context.Context, actor Actor, id uuid.UUID) (*VehicleView, error)
}

type vehicleQueriesImpl struct {
	ownerLookup  vehicleLookup
	dealerLookup vehicleLookup
	vehicles     VehicleReadStore
	statuses     StatusReader
}

func NewVehicleQueries(vehicles VehicleReadStore, pickups PickupReadStore, statuses StatusReader) VehicleQueries {
	return &vehicleQueriesImpl{
		ownerLookup:  &ownerVehicleLookup{vehicles: vehicles},
		dealerLookup: &dealerVehicleLookup{pickups: pickups},
		vehicles:     vehicles,
		statuses:     statuses,
	}
}

func (q *vehicleQueriesImpl) ListMine(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error) {
	views, err := q.vehicles.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		decorate(v)
	}
	return views, nil
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*VehicleDetailView, error) {
	var lookup vehicleLookup
	switch actor.Role {
	case user.RoleOwner:
		lookup = q.ownerLookup
	case user.RoleDealer:
		lookup = q.dealerLookup
	default:
		return nil, ErrRoleNotAllowed
	}

	view, err := lookup.find(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	// Every transition writes through to the cache, so on the polling
	// path a cached stage can be fresher than the row just read.
	if cached, ok := q.statuses.GetStatus(ctx, id); ok {
		view.Status = cached.String()
	}
	decorate(view)

	detail := &VehicleDetailView{VehicleView: *view}
	for _, step := range vehicle.Steps(vehicle.Status(view.Status)) {
		detail.Steps = append(detail.Steps, StatusStepView{
			Status:    step.Status.String(),
			Label:     step.Label,
			Completed: step.Completed,
			Current:   step.Current,
		})
	}
	return detail, nil
}

type ownerVehicleLookup struct {
	vehicles VehicleReadStore
}

func (l *ownerVehicleLookup) find(ctx context.Context, actor Actor, id uuid.UUID) (*VehicleView, error) {
	view, err := l.vehicles.FindOwnedByID(ctx, actor.ID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}
	return view, nil
}

type dealerVehicleLookup struct {
	pickups PickupReadStore
}

func (l *dealerVehicleLookup) find(ctx context.Context, _ Actor, id uuid.UUID) (*VehicleView, error) {
	pickup, err := l.pickups.FindByVehicleID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}
	if pickup.Vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	// The embedded snapshot can predate scheduling and miss the date;
	// the pickup record is authoritative for it.
	view := *pickup.Vehicle
	date := pickup.PickupDate
	view.PickupDate = &date
	slot := pickup.Slot
	view.PickupSlot = &slot
	return &view, nil
}

// decorate fills the registry-derived presentation fields.
func decorate(v *VehicleView) {
	status := vehicle.Status(v.Status)
	if label, err := vehicle.Label(status); err == nil {
		v.StatusLabel = label
	}
	v.ProgressPercent = vehicle.ProgressPercent(status)
}
