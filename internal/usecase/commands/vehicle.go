package commands

import (
	"context"

	"recarma/internal/domain/user"
	"recarma/internal/domain/vehicle"
	"recarma/internal/infra"
	"recarma/internal/pkg/clock"
	"recarma/internal/pkg/errs"
	"recarma/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound       = errs.New("vehicle not found")
	ErrStatusUpdateForbidden = errs.New("only dealers may update vehicle status")
	ErrInvalidTransition     = errs.New("invalid lifecycle transition")
)

type CreateVehicleParams struct {
	Make           string
	Model          string
	Year           int
	ConditionScore int
}

// UpdateStatusResult carries the refreshed record and the new stage's
// label for user-facing acknowledgement.
type UpdateStatusResult struct {
	Vehicle     *queries.VehicleDetailView
	StatusLabel string
}

type VehicleCommands interface {
	CreateVehicle(ctx context.Context, ownerID uuid.UUID, params CreateVehicleParams) (*queries.VehicleView, error)
	UpdateStatus(ctx context.Context, actor queries.Actor, vehicleID uuid.UUID, target string) (*UpdateStatusResult, error)
}

type vehicleCommandsImpl struct {
	vehicleRepo       VehicleRepository
	statusCache       StatusCache
	clock             clock.Clock
	strictTransitions bool
}

func NewVehicleCommands(
	vehicleRepo VehicleRepository,
	statusCache StatusCache,
	clk clock.Clock,
	strictTransitions bool,
) VehicleCommands {
	return &vehicleCommandsImpl{
		vehicleRepo:       vehicleRepo,
		statusCache:       statusCache,
		clock:             clk,
		strictTransitions: strictTransitions,
	}
}

func (c *vehicleCommandsImpl) CreateVehicle(ctx context.Context, ownerID uuid.UUID, params CreateVehicleParams) (*queries.VehicleView, error) {
	description, err := vehicle.NewDescription(params.Make, params.Model)
	if err != nil {
		return nil, err
	}
	year, err := vehicle.NewYear(params.Year, c.clock.Now())
	if err != nil {
		return nil, err
	}
	condition, err := vehicle.NewConditionScore(params.ConditionScore)
	if err != nil {
		return nil, err
	}

	v := vehicle.NewVehicle(ownerID, description, year, condition)
	if err := c.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	return vehicleToView(v), nil
}

// UpdateStatus is the dealer's transition operation. By default any of the
// six stages may be set regardless of current state: the manual override
// exists to correct data, so backward and skip transitions are applied
// without complaint. Strict mode narrows it to the next recommended stage.
func (c *vehicleCommandsImpl) UpdateStatus(ctx context.Context, actor queries.Actor, vehicleID uuid.UUID, target string) (*UpdateStatusResult, error) {
	if actor.Role != user.RoleDealer {
		return nil, ErrStatusUpdateForbidden
	}

	status, err := vehicle.NewStatus(target)
	if err != nil {
		return nil, err
	}

	v, err := c.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrVehicleNotFound)
		}
		return nil, err
	}

	// Dealers reach vehicles only through the pickup pool; one that was
	// never scheduled is absent from their worklist.
	if !v.IsScheduled() {
		return nil, ErrVehicleNotFound
	}

	if c.strictTransitions {
		next, ok := vehicle.Next(v.Status())
		if !ok || next != status {
			return nil, ErrInvalidTransition
		}
	}

	if err := c.vehicleRepo.UpdateStatus(ctx, vehicleID, status); err != nil {
		return nil, err
	}
	c.statusCache.SetStatus(ctx, vehicleID, status)

	// Re-fetch rather than trusting the local copy: the transition may
	// have backend side effects (certificate issuance at COD_ISSUED).
	updated, err := c.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	label, err := vehicle.Label(updated.Status())
	if err != nil {
		return nil, err
	}

	detail := &queries.VehicleDetailView{VehicleView: *vehicleToView(updated)}
	for _, step := range vehicle.Steps(updated.Status()) {
		detail.Steps = append(detail.Steps, queries.StatusStepView{
			Status:    step.Status.String(),
			Label:     step.Label,
			Completed: step.Completed,
			Current:   step.Current,
		})
	}

	return &UpdateStatusResult{Vehicle: detail, StatusLabel: label}, nil
}

func vehicleToView(v *vehicle.Vehicle) *queries.VehicleView {
	view := &queries.VehicleView{
		ID:              v.ID(),
		OwnerID:         v.OwnerID(),
		Make:            v.Description().Make(),
		Model:           v.Description().Model(),
		Year:            v.Year().Value(),
		ConditionScore:  v.Condition().Value(),
		Status:          v.Status().String(),
		ProgressPercent: vehicle.ProgressPercent(v.Status()),
		CreatedAt:       v.CreatedAt(),
		UpdatedAt:       v.UpdatedAt(),
	}
	if label, err := vehicle.Label(v.Status()); err == nil {
		view.StatusLabel = label
	}
	if schedule := v.Pickup(); schedule != nil {
		date := schedule.Date()
		slot := schedule.Slot()
		view.PickupDate = &date
		view.PickupSlot = &slot
	}
	return view
}
