package repository

import (
	"context"
	"time"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type vehicleItem struct {
	ID        string `dynamodbav:"id"`
	Plate     string `dynamodbav:"plate"`
	Model     string `dynamodbav:"model"`
	CreatedAt string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository persists Vehicle entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type VehicleDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb DynamoAPI, tableName string) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VehicleDynamoRepository) Add(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.ID = uuid.NewString()
	v.CreatedAt = time.Now().UTC()

	if _, err := putItem(ctx, r.ddb, r.tableName, toVehicleItem(v), conditionNew); err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	items, err := scanAll[vehicleItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Vehicle, 0, len(items))
	for _, it := range items {
		out = append(out, fromVehicleItem(it))
	}
	sortDesc(out, func(v entities.Vehicle) time.Time { return v.CreatedAt })
	return out, nil
}

func (r *VehicleDynamoRepository) Delete(ctx context.Context, id string) (entities.Vehicle, error) {
	it, found, err := deleteItem[vehicleItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.Vehicle{}, err
	}
	return fromVehicleItem(it), nil
}

func toVehicleItem(v entities.Vehicle) vehicleItem {
	return vehicleItem{
		ID:        v.ID,
		Plate:     v.Plate,
		Model:     v.Model,
		CreatedAt: formatTime(v.CreatedAt),
	}
}

func fromVehicleItem(it vehicleItem) entities.Vehicle {
	return entities.Vehicle{
		ID:        it.ID,
		Plate:     it.Plate,
		Model:     it.Model,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
