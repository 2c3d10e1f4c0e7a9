package request

import (
	"recarma/internal/usecase/commands"
)

type CreateVehicleRequest struct {
	Make           string `json:"make" binding:"required"`
	Model          string `json:"model" binding:"required"`
	Year           int    `json:"year" binding:"required"`
	ConditionScore int    `json:"condition_score" binding:"required"`
}

func (r CreateVehicleRequest) ToParams() commands.CreateVehicleParams {
	return commands.CreateVehicleParams{
		Make:           r.Make,
		Model:          r.Model,
		Year:           r.Year,
		ConditionScore: r.ConditionScore,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
