package queries

import (
	"time"

	"recarma/internal/domain/user"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type VehicleView struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	Make            string     `json:"make"`
	Model           string     `json:"model"`
	Year            int        `json:"year"`
	ConditionScore  int        `json:"condition_score"`
	Status          string     `json:"status"`
	StatusLabel     string     `json:"status_label"`
	ProgressPercent int        `json:"progress_percent"`
	PickupDate      *time.Time `json:"pickup_date,omitempty"`
	PickupSlot      *string    `json:"pickup_slot,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type StatusStepView struct {
	Status    string `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// VehicleDetailView is the single-vehicle projection both dashboards link
// into, with the full lifecycle checklist attached.
type VehicleDetailView struct {
	VehicleView
	Steps []StatusStepView `json:"steps"`
}

type OwnerProfileView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type PickupView struct {
	ID         uuid.UUID         `json:"id"`
	VehicleID  uuid.UUID         `json:"vehicle_id"`
	PickupDate time.Time         `json:"pickup_date"`
	Slot       string            `json:"slot"`
	Vehicle    *VehicleView      `json:"vehicle,omitempty"`
	Owner      *OwnerProfileView `json:"owner,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

// Actor identifies the authenticated caller for role-scoped reads.
type Actor struct {
	ID   uuid.UUID
	Role user.Role
}
