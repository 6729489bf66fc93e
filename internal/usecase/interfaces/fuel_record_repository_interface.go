package interfaces

import (
	"context"

	"controle_abastecimento/internal/domain/entities"
)

// IFuelRecordRepository abstracts the fuel records collection.
//
// GetAll is ordered by event date, most recent first. GetByID, Update and
// Delete return the zero value when the id does not exist. Update replaces
// every field except ID and CreatedAt; last write wins.

type IFuelRecordRepository interface {
	Add(ctx context.Context, r entities.FuelRecord) (entities.FuelRecord, error)
	GetAll(ctx context.Context) ([]entities.FuelRecord, error)
	GetByID(ctx context.Context, id string) (entities.FuelRecord, error)
	Update(ctx context.Context, r entities.FuelRecord) (entities.FuelRecord, error)
	Delete(ctx context.Context, id string) (entities.FuelRecord, error)
}
