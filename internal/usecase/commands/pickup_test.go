//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"recarma/internal/domain/pickup"
	"recarma/internal/domain/vehicle"
	"recarma/internal/infra"
	"recarma/internal/pkg/clock"
	"recarma/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule(t *testing.T) {
	ownerID := uuid.New()
	pickupDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	newCommands := func(vehicleRepo *fakeVehicleRepo, pickupRepo *fakePickupRepo, cache *fakeStatusCache) commands.PickupCommands {
		return commands.NewPickupCommands(pickupRepo, vehicleRepo, cache, fakeTxBeginner{}, clock.NewMockClock(testNow))
	}

	t.Run("success: pickup record and status advance together", func(t *testing.T) {
		v := newTestVehicle(t, ownerID)
		vehicleRepo := newFakeVehicleRepo(v)
		pickupRepo := &fakePickupRepo{}
		cache := newFakeStatusCache()

		view, err := newCommands(vehicleRepo, pickupRepo, cache).Schedule(context.Background(), ownerID, commands.SchedulePickupParams{
			VehicleID:  v.ID(),
			PickupDate: pickupDate,
			Slot:       "MORNING",
		})
		require.NoError(t, err)

		assert.Equal(t, v.ID(), view.VehicleID)
		assert.Equal(t, pickupDate, view.PickupDate)
		assert.Equal(t, "MORNING", view.Slot)

		require.NotNil(t, view.Vehicle)
		assert.Equal(t, "PICKUP_SCHEDULED", view.Vehicle.Status)
		require.NotNil(t, view.Vehicle.PickupDate)
		assert.Equal(t, pickupDate, *view.Vehicle.PickupDate)

		require.Len(t, pickupRepo.pickups, 1)
		assert.Equal(t, vehicle.StatusPickupScheduled, v.Status())
		assert.Equal(t, vehicle.StatusPickupScheduled, cache.statuses[v.ID()])
	})

	t.Run("missing vehicle", func(t *testing.T) {
		cmds := newCommands(newFakeVehicleRepo(), &fakePickupRepo{}, newFakeStatusCache())

		_, err := cmds.Schedule(context.Background(), ownerID, commands.SchedulePickupParams{
			VehicleID: uuid.New(), PickupDate: pickupDate, Slot: "MORNING",
		})

		assert.ErrorIs(t, err, commands.ErrVehicleNotFound)
	})

	t.Run("someone else's vehicle reads as absent", func(t *testing.T) {
		v := newTestVehicle(t, uuid.New())
		cache := newFakeStatusCache()
		cmds := newCommands(newFakeVehicleRepo(v), &fakePickupRepo{}, cache)

		_, err := cmds.Schedule(context.Background(), ownerID, commands.SchedulePickupParams{
			VehicleID: v.ID(), PickupDate: pickupDate, Slot: "MORNING",
		})

		assert.ErrorIs(t, err, commands.ErrVehicleNotFound)
		assert.Equal(t, vehicle.StatusCreated, v.Status())
		assert.Empty(t, cache.statuses)
	})

	t.Run("only CREATED vehicles can be scheduled", func(t *testing.T) {
		v := newTestVehicle(t, ownerID)
		v.SetStatus(vehicle.StatusInTransit)
		cmds := newCommands(newFakeVehicleRepo(v), &fakePickupRepo{}, newFakeStatusCache())

		_, err := cmds.Schedule(context.Background(), ownerID, commands.SchedulePickupParams{
			VehicleID: v.ID(), PickupDate: pickupDate, Slot: "MORNING",
		})

		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("past date rejected", func(t *testing.T) {
		v := newTestVehicle(t, ownerID)
		cmds := newCommands(newFakeVehicleRepo(v), &fakePickupRepo{}, newFakeStatusCache())

		_, err := cmds.Schedule(context.Background(), ownerID, commands.SchedulePickupParams{
			VehicleID: v.ID(), PickupDate: testNow.AddDate(0, 0, -1), Slot: "MORNING",
		})

		assert.ErrorIs(t, err, pickup.ErrDateInPast)
	})

	t.Run("unknown slot rejected", func(t *testing.T) {
		v := newTestVehicle(t, ownerID)
		cmds := newCommands(newFakeVehicleRepo(v), &fakePickupRepo{}, newFakeStatusCache())

		_, err := cmds.Schedule(context.Background(), ownerID, commands.SchedulePickupParams{
			VehicleID: v.ID(), PickupDate: pickupDate, Slot: "MIDNIGHT",
		})

		assert.ErrorIs(t, err, pickup.ErrInvalidSlot)
	})

	t.Run("second pickup for the same vehicle is rejected", func(t *testing.T) {
		v := newTestVehicle(t, ownerID)
		pickupRepo := &fakePickupRepo{
			createErr: infra.WrapRepoErr("pickup exists", nil, infra.KindDuplicateKey),
		}
		cache := newFakeStatusCache()
		cmds := newCommands(newFakeVehicleRepo(v), pickupRepo, cache)

		_, err := cmds.Schedule(context.Background(), ownerID, commands.SchedulePickupParams{
			VehicleID: v.ID(), PickupDate: pickupDate, Slot: "AFTERNOON",
		})

		assert.ErrorIs(t, err, commands.ErrPickupAlreadyScheduled)
		assert.Empty(t, cache.statuses)
	})
}
