package repository

import (
	"context"
	"time"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// fuelRecordItem keeps the flat document layout: each start/end pair is two
// optional attributes of which at most one is present.
type fuelRecordItem struct {
	ID            string   `dynamodbav:"id"`
	Date          string   `dynamodbav:"date"`
	ResponsibleID string   `dynamodbav:"responsible_id"`
	VehicleID     string   `dynamodbav:"vehicle_id"`
	FuelTypes     []string `dynamodbav:"fuel_types"`

	DieselOdometerStart *float64 `dynamodbav:"diesel_odometer_start,omitempty"`
	DieselOdometerEnd   *float64 `dynamodbav:"diesel_odometer_end,omitempty"`
	DieselLevelStart    *float64 `dynamodbav:"diesel_level_start,omitempty"`
	DieselLevelEnd      *float64 `dynamodbav:"diesel_level_end,omitempty"`
	DieselDailyStart    *float64 `dynamodbav:"diesel_daily_start,omitempty"`
	DieselDailyEnd      *float64 `dynamodbav:"diesel_daily_end,omitempty"`
	DieselTotalRefueled *float64 `dynamodbav:"diesel_total_refueled,omitempty"`

	ArlaOdometerStart *float64 `dynamodbav:"arla_odometer_start,omitempty"`
	ArlaOdometerEnd   *float64 `dynamodbav:"arla_odometer_end,omitempty"`
	ArlaLevelStart    *float64 `dynamodbav:"arla_level_start,omitempty"`
	ArlaLevelEnd      *float64 `dynamodbav:"arla_level_end,omitempty"`
	ArlaDailyStart    *float64 `dynamodbav:"arla_daily_start,omitempty"`
	ArlaDailyEnd      *float64 `dynamodbav:"arla_daily_end,omitempty"`
	ArlaTotalRefueled *float64 `dynamodbav:"arla_total_refueled,omitempty"`

	VehicleKm    *float64 `dynamodbav:"vehicle_km,omitempty"`
	Average      *float64 `dynamodbav:"average,omitempty"`
	Observations string   `dynamodbav:"observations,omitempty"`
	CreatedAt    string   `dynamodbav:"created_at"`
}

// FuelRecordDynamoRepository persists FuelRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// GetAll scans the table and orders by event date in memory.

type FuelRecordDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IFuelRecordRepository = (*FuelRecordDynamoRepository)(nil)

func NewFuelRecordDynamoRepository(ddb DynamoAPI, tableName string) *FuelRecordDynamoRepository {
	return &FuelRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *FuelRecordDynamoRepository) Add(ctx context.Context, rec entities.FuelRecord) (entities.FuelRecord, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if _, err := putItem(ctx, r.ddb, r.tableName, toFuelRecordItem(rec), conditionNew); err != nil {
		return entities.FuelRecord{}, err
	}
	return rec, nil
}

func (r *FuelRecordDynamoRepository) GetAll(ctx context.Context) ([]entities.FuelRecord, error) {
	items, err := scanAll[fuelRecordItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.FuelRecord, 0, len(items))
	for _, it := range items {
		out = append(out, fromFuelRecordItem(it))
	}
	sortDesc(out, func(rec entities.FuelRecord) time.Time { return rec.Date })
	return out, nil
}

func (r *FuelRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.FuelRecord, error) {
	it, found, err := getItem[fuelRecordItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.FuelRecord{}, err
	}
	return fromFuelRecordItem(it), nil
}

// Update overwrites the whole document of an existing record.
func (r *FuelRecordDynamoRepository) Update(ctx context.Context, rec entities.FuelRecord) (entities.FuelRecord, error) {
	ok, err := putItem(ctx, r.ddb, r.tableName, toFuelRecordItem(rec), conditionExisting)
	if err != nil || !ok {
		return entities.FuelRecord{}, err
	}
	return rec, nil
}

func (r *FuelRecordDynamoRepository) Delete(ctx context.Context, id string) (entities.FuelRecord, error) {
	it, found, err := deleteItem[fuelRecordItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !found {
		return entities.FuelRecord{}, err
	}
	return fromFuelRecordItem(it), nil
}

func toFuelRecordItem(rec entities.FuelRecord) fuelRecordItem {
	it := fuelRecordItem{
		ID:            rec.ID,
		Date:          formatTime(rec.Date),
		ResponsibleID: rec.ResponsibleID,
		VehicleID:     rec.VehicleID,
		FuelTypes:     make([]string, 0, len(rec.FuelTypes)),
		VehicleKm:     rec.VehicleKm,
		Average:       rec.Average,
		Observations:  rec.Observations,
		CreatedAt:     formatTime(rec.CreatedAt),
	}
	for _, t := range rec.FuelTypes {
		it.FuelTypes = append(it.FuelTypes, string(t))
	}

	it.DieselOdometerStart = rec.Diesel.OdometerStart
	it.DieselOdometerEnd = rec.Diesel.OdometerEnd
	it.DieselLevelStart, it.DieselLevelEnd = splitReading(rec.Diesel.Level)
	it.DieselDailyStart, it.DieselDailyEnd = splitReading(rec.Diesel.Daily)
	it.DieselTotalRefueled = rec.Diesel.TotalRefueled

	it.ArlaOdometerStart = rec.Arla.OdometerStart
	it.ArlaOdometerEnd = rec.Arla.OdometerEnd
	it.ArlaLevelStart, it.ArlaLevelEnd = splitReading(rec.Arla.Level)
	it.ArlaDailyStart, it.ArlaDailyEnd = splitReading(rec.Arla.Daily)
	it.ArlaTotalRefueled = rec.Arla.TotalRefueled
	return it
}

func fromFuelRecordItem(it fuelRecordItem) entities.FuelRecord {
	rec := entities.FuelRecord{
		ID:            it.ID,
		Date:          parseTime(it.Date),
		ResponsibleID: it.ResponsibleID,
		VehicleID:     it.VehicleID,
		FuelTypes:     make([]entities.FuelType, 0, len(it.FuelTypes)),
		Diesel: entities.FuelData{
			OdometerStart: it.DieselOdometerStart,
			OdometerEnd:   it.DieselOdometerEnd,
			Level:         joinReading(it.DieselLevelStart, it.DieselLevelEnd),
			Daily:         joinReading(it.DieselDailyStart, it.DieselDailyEnd),
			TotalRefueled: it.DieselTotalRefueled,
		},
		Arla: entities.FuelData{
			OdometerStart: it.ArlaOdometerStart,
			OdometerEnd:   it.ArlaOdometerEnd,
			Level:         joinReading(it.ArlaLevelStart, it.ArlaLevelEnd),
			Daily:         joinReading(it.ArlaDailyStart, it.ArlaDailyEnd),
			TotalRefueled: it.ArlaTotalRefueled,
		},
		VehicleKm:    it.VehicleKm,
		Average:      it.Average,
		Observations: it.Observations,
		CreatedAt:    parseTime(it.CreatedAt),
	}
	for _, t := range it.FuelTypes {
		rec.FuelTypes = append(rec.FuelTypes, entities.FuelType(t))
	}
	return rec
}

func splitReading(r entities.Reading) (start, end *float64) {
	if v, ok := r.Start(); ok {
		return &v, nil
	}
	if v, ok := r.End(); ok {
		return nil, &v
	}
	return nil, nil
}

// joinReading prefers the end value when a legacy document carries both.
func joinReading(start, end *float64) entities.Reading {
	if end != nil {
		return entities.EndReading(*end)
	}
	if start != nil {
		return entities.StartReading(*start)
	}
	return entities.Reading{}
}
