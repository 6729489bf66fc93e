package response

import (
	"time"

	"controle_abastecimento/internal/domain/entities"
)

type VehicleResponse struct {
	ID        string    `json:"id"`
	Plate     string    `json:"plate"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{ID: v.ID, Plate: v.Plate, Model: v.Model, CreatedAt: v.CreatedAt}
}

func FromVehicles(list []entities.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromVehicle(v))
	}
	return out
}

func fromVehiclePtr(v *entities.Vehicle) *VehicleResponse {
	if v == nil {
		return nil
	}
	res := FromVehicle(*v)
	return &res
}

type ModelsResponse struct {
	Models []string `json:"models"`
}
