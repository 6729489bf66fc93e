package interfaces

import (
	"context"

	"controle_abastecimento/internal/domain/entities"
)

// IResponsibleRepository abstracts the responsibles collection.
//
// The store assigns ID and CreatedAt on Add and returns GetAll newest first.
// Delete returns the removed entity, or the zero value when id is unknown.

type IResponsibleRepository interface {
	Add(ctx context.Context, r entities.Responsible) (entities.Responsible, error)
	GetAll(ctx context.Context) ([]entities.Responsible, error)
	Delete(ctx context.Context, id string) (entities.Responsible, error)
}
