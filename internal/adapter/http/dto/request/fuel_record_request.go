package request

import (
	"errors"
	"strings"
	"time"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase"
)

var ErrInvalidReadingType = errors.New("invalid reading type")

// ReadingRequest is a level or daily total selector. Type is "start" or
// "end"; a selector without a value counts as no reading.
type ReadingRequest struct {
	Type  string   `json:"type" example:"end"`
	Value *float64 `json:"value" example:"650"`
}

type FuelDataRequest struct {
	OdometerStart *float64        `json:"odometer_start" example:"1200"`
	OdometerEnd   *float64        `json:"odometer_end" example:"1280"`
	Level         *ReadingRequest `json:"level"`
	Daily         *ReadingRequest `json:"daily"`
	TotalRefueled *float64        `json:"total_refueled" example:"80"`
}

// FuelRecordRequest is the refueling form. An absent date means now on
// create and keeps the stored date on update.
type FuelRecordRequest struct {
	Date          *time.Time       `json:"date"`
	ResponsibleID string           `json:"responsible_id"`
	VehicleID     string           `json:"vehicle_id"`
	FuelTypes     []string         `json:"fuel_types" example:"DIESEL"`
	Diesel        *FuelDataRequest `json:"diesel"`
	Arla          *FuelDataRequest `json:"arla"`
	VehicleKm     *float64         `json:"vehicle_km" example:"10400"`
	Observations  string           `json:"observations"`
}

func (r FuelRecordRequest) ToInput() (usecase.FuelRecordInput, error) {
	in := usecase.FuelRecordInput{
		Date:          r.Date,
		ResponsibleID: r.ResponsibleID,
		VehicleID:     r.VehicleID,
		VehicleKm:     r.VehicleKm,
		Observations:  r.Observations,
	}
	for _, t := range r.FuelTypes {
		in.FuelTypes = append(in.FuelTypes, entities.FuelType(t))
	}

	var err error
	if in.Diesel, err = r.Diesel.toFuelData(); err != nil {
		return usecase.FuelRecordInput{}, err
	}
	if in.Arla, err = r.Arla.toFuelData(); err != nil {
		return usecase.FuelRecordInput{}, err
	}
	return in, nil
}

func (d *FuelDataRequest) toFuelData() (entities.FuelData, error) {
	if d == nil {
		return entities.FuelData{}, nil
	}
	level, err := d.Level.toReading()
	if err != nil {
		return entities.FuelData{}, err
	}
	daily, err := d.Daily.toReading()
	if err != nil {
		return entities.FuelData{}, err
	}
	return entities.FuelData{
		OdometerStart: d.OdometerStart,
		OdometerEnd:   d.OdometerEnd,
		Level:         level,
		Daily:         daily,
		TotalRefueled: d.TotalRefueled,
	}, nil
}

func (r *ReadingRequest) toReading() (entities.Reading, error) {
	if r == nil {
		return entities.Reading{}, nil
	}
	kind := entities.ReadingKind(strings.ToLower(strings.TrimSpace(r.Type)))
	switch kind {
	case entities.ReadingNone:
		return entities.Reading{}, nil
	case entities.ReadingStart, entities.ReadingEnd:
		if r.Value == nil {
			return entities.Reading{}, nil
		}
		return entities.Reading{Kind: kind, Value: *r.Value}, nil
	default:
		return entities.Reading{}, ErrInvalidReadingType
	}
}

// AverageQuery feeds the average preview of a form being filled in.
type AverageQuery struct {
	RecordID            string   `form:"record_id"`
	VehicleID           string   `form:"vehicle_id"`
	VehicleKm           *float64 `form:"vehicle_km"`
	DieselTotalRefueled *float64 `form:"diesel_total_refueled"`
}

func (q AverageQuery) ToInput() consumption.AverageInput {
	return consumption.AverageInput{
		RecordID:            strings.TrimSpace(q.RecordID),
		VehicleID:           strings.TrimSpace(q.VehicleID),
		VehicleKm:           q.VehicleKm,
		DieselTotalRefueled: q.DieselTotalRefueled,
	}
}
