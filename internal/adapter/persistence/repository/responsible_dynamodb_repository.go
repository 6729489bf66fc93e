package repository

import (
	"context"
	"time"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type responsibleItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Phone     string `dynamodbav:"phone"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ResponsibleDynamoRepository persists Responsible entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ResponsibleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IResponsibleRepository = (*ResponsibleDynamoRepository)(nil)

func NewResponsibleDynamoRepository(ddb DynamoAPI, tableName string) *ResponsibleDynamoRepository {
	return &ResponsibleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ResponsibleDynamoRepository) Add(ctx context.Context, e entities.Responsible) (entities.Responsible, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()

	if _, err := putItem(ctx, r.ddb, r.tableName, toResponsibleItem(e), conditionNew); err != nil {
		return entities.Responsible{}, err
	}
	return e, nil
}

func (r *ResponsibleDynamoRepository) GetAll(ctx context.Context) ([]entities.Responsible, error) {
	items, err := scanAll[responsibleItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Responsible, 0, len(items))
	for _, it := range items {
		out = append(out, fromResponsibleItem(it))
	}
	sortDesc(out, func(e entities.Responsible) time.Time { return e.CreatedAt })
	return out, nil
}

func (r *ResponsibleDynamoRepository) Delete(ctx context.Context, id string) (entities.Responsible, error) {
	it, found, err := deleteItem[responsibleItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Responsible{}, err
	}
	return fromResponsibleItem(it), nil
}

func toResponsibleItem(e entities.Responsible) responsibleItem {
	return responsibleItem{
		ID:        e.ID,
		Name:      e.Name,
		Phone:     e.Phone,
		CreatedAt: formatTime(e.CreatedAt),
	}
}

func fromResponsibleItem(it responsibleItem) entities.Responsible {
	return entities.Responsible{
		ID:        it.ID,
		Name:      it.Name,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
