package response

import (
	"recarma/internal/usecase/commands"
	"recarma/internal/usecase/queries"
)

type VehicleResponse = queries.VehicleView

type VehicleDetailResponse = queries.VehicleDetailView

type UpdateStatusResponse struct {
	Vehicle *queries.VehicleDetailView `json:"vehicle"`
	// Message acknowledges the transition with the new stage's label.
	Message string `json:"message"`
}

func FromUpdateStatusResult(result *commands.UpdateStatusResult) UpdateStatusResponse {
	return UpdateStatusResponse{
		Vehicle: result.Vehicle,
		Message: "Status updated to " + result.StatusLabel,
	}
}
