package commands

import (
	"context"
	"time"

	"recarma/internal/domain/pickup"
	"recarma/internal/domain/vehicle"
	"recarma/internal/infra"
	"recarma/internal/pkg/clock"
	"recarma/internal/pkg/errs"
	"recarma/internal/usecase/queries"
	"recarma/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrPickupAlreadyScheduled = errs.New("pickup already scheduled for vehicle")

type SchedulePickupParams struct {
	VehicleID  uuid.UUID
	PickupDate time.Time
	Slot       string
}

type PickupCommands interface {
	Schedule(ctx context.Context, ownerID uuid.UUID, params SchedulePickupParams) (*queries.PickupView, error)
}

type pickupCommandsImpl struct {
	pickupRepo  PickupRepository
	vehicleRepo VehicleRepository
	statusCache StatusCache
	db          shared.TxBeginner
	clock       clock.Clock
}

func NewPickupCommands(
	pickupRepo PickupRepository,
	vehicleRepo VehicleRepository,
	statusCache StatusCache,
	db shared.TxBeginner,
	clk clock.Clock,
) PickupCommands {
	return &pickupCommandsImpl{
		pickupRepo:  pickupRepo,
		vehicleRepo: vehicleRepo,
		statusCache: statusCache,
		db:          db,
		clock:       clk,
	}
}

// Schedule creates the pickup record and advances the vehicle to
// PICKUP_SCHEDULED in one transaction. Either both halves persist or
// neither does.
func (c *pickupCommandsImpl) Schedule(ctx context.Context, ownerID uuid.UUID, params SchedulePickupParams) (*queries.PickupView, error) {
	v, err := c.vehicleRepo.FindByID(ctx, params.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}

	// A foreign vehicle reads as absent: owners only ever operate on
	// their own collection.
	if v.OwnerID() != ownerID {
		return nil, ErrVehicleNotFound
	}

	if v.Status() != vehicle.StatusCreated {
		return nil, ErrInvalidTransition
	}

	date, err := pickup.NewDate(params.PickupDate, c.clock.Now())
	if err != nil {
		return nil, err
	}
	slot, err := pickup.NewSlot(params.Slot)
	if err != nil {
		return nil, err
	}

	p := pickup.NewPickup(v.ID(), date, slot)
	v.MarkPickupScheduled(vehicle.NewPickupSchedule(date.Value(), slot.String()))

	created, err := shared.RunInTx(ctx, c.db, func(tx infra.DBTX) (*pickup.Pickup, error) {
		if err := c.pickupRepo.Create(ctx, tx, p); err != nil {
			return nil, err
		}
		if err := c.vehicleRepo.MarkPickupScheduled(ctx, tx, v); err != nil {
			return nil, err
		}
		return p, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrPickupAlreadyScheduled)
		}
		return nil, err
	}

	c.statusCache.SetStatus(ctx, v.ID(), vehicle.StatusPickupScheduled)

	pickupDate := created.Date().Value()
	return &queries.PickupView{
		ID:         created.ID(),
		VehicleID:  created.VehicleID(),
		PickupDate: pickupDate,
		Slot:       created.Slot().String(),
		Vehicle:    vehicleToView(v),
		CreatedAt:  created.CreatedAt(),
	}, nil
}
