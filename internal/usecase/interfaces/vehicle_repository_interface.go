package interfaces

import (
	"context"

	"controle_abastecimento/internal/domain/entities"
)

// IVehicleRepository abstracts the vehicles collection, with the same
// contract as IResponsibleRepository.

type IVehicleRepository interface {
	Add(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	Delete(ctx context.Context, id string) (entities.Vehicle, error)
}
