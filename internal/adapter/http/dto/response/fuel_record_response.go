package response

import (
	"time"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/usecase"
)

type ReadingResponse struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

type FuelDataResponse struct {
	OdometerStart *float64         `json:"odometer_start"`
	OdometerEnd   *float64         `json:"odometer_end"`
	Level         *ReadingResponse `json:"level"`
	Daily         *ReadingResponse `json:"daily"`
	TotalRefueled *float64         `json:"total_refueled"`
}

type FuelRecordResponse struct {
	ID            string            `json:"id"`
	Date          time.Time         `json:"date"`
	ResponsibleID string            `json:"responsible_id"`
	VehicleID     string            `json:"vehicle_id"`
	FuelTypes     []string          `json:"fuel_types"`
	Diesel        *FuelDataResponse `json:"diesel"`
	Arla          *FuelDataResponse `json:"arla"`
	VehicleKm     *float64          `json:"vehicle_km"`
	Average       *float64          `json:"average"`
	Observations  string            `json:"observations"`
	CreatedAt     time.Time         `json:"created_at"`
}

// FuelRecordDetailResponse carries the resolved references; a reference
// that no longer exists is null.
type FuelRecordDetailResponse struct {
	FuelRecordResponse
	Responsible *ResponsibleResponse `json:"responsible"`
	Vehicle     *VehicleResponse     `json:"vehicle"`
}

func FromFuelRecord(r entities.FuelRecord) FuelRecordResponse {
	types := make([]string, 0, len(r.FuelTypes))
	for _, t := range r.FuelTypes {
		types = append(types, string(t))
	}
	res := FuelRecordResponse{
		ID:            r.ID,
		Date:          r.Date,
		ResponsibleID: r.ResponsibleID,
		VehicleID:     r.VehicleID,
		FuelTypes:     types,
		VehicleKm:     r.VehicleKm,
		Average:       r.Average,
		Observations:  r.Observations,
		CreatedAt:     r.CreatedAt,
	}
	if r.Has(entities.FuelTypeDiesel) {
		res.Diesel = fromFuelData(r.Diesel)
	}
	if r.Has(entities.FuelTypeArla) {
		res.Arla = fromFuelData(r.Arla)
	}
	return res
}

func FromFuelRecords(list []entities.FuelRecord) []FuelRecordResponse {
	out := make([]FuelRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromFuelRecord(r))
	}
	return out
}

func FromFuelRecordDetail(d usecase.FuelRecordDetail) FuelRecordDetailResponse {
	return FuelRecordDetailResponse{
		FuelRecordResponse: FromFuelRecord(d.Record),
		Responsible:        fromResponsiblePtr(d.Responsible),
		Vehicle:            fromVehiclePtr(d.Vehicle),
	}
}

func FromFuelRecordDetails(list []usecase.FuelRecordDetail) []FuelRecordDetailResponse {
	out := make([]FuelRecordDetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, FromFuelRecordDetail(d))
	}
	return out
}

func fromFuelData(d entities.FuelData) *FuelDataResponse {
	return &FuelDataResponse{
		OdometerStart: d.OdometerStart,
		OdometerEnd:   d.OdometerEnd,
		Level:         fromReading(d.Level),
		Daily:         fromReading(d.Daily),
		TotalRefueled: d.TotalRefueled,
	}
}

func fromReading(r entities.Reading) *ReadingResponse {
	if !r.IsSet() {
		return nil
	}
	return &ReadingResponse{Type: string(r.Kind), Value: r.Value}
}

type OdometerSuggestionsResponse struct {
	Diesel *float64 `json:"diesel"`
	Arla   *float64 `json:"arla"`
}

func FromOdometerSuggestions(s usecase.OdometerSuggestions) OdometerSuggestionsResponse {
	return OdometerSuggestionsResponse{Diesel: s.Diesel, Arla: s.Arla}
}

// AverageResponse is null when no average can be derived yet.
type AverageResponse struct {
	Average *float64 `json:"average"`
}
