package response

import (
	"encoding/json"
	"testing"
	"time"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/domain/report"
	"controle_abastecimento/internal/usecase"
)

func fp(v float64) *float64 { return &v }

func TestFromFuelRecord(t *testing.T) {
	now := time.Now().UTC()
	rec := entities.FuelRecord{
		ID:        "r1",
		Date:      now,
		FuelTypes: []entities.FuelType{entities.FuelTypeDiesel},
		Diesel: entities.FuelData{
			OdometerStart: fp(1),
			OdometerEnd:   fp(2),
			Level:         entities.StartReading(30),
			TotalRefueled: fp(80),
		},
		Average: fp(4.5),
	}

	res := FromFuelRecord(rec)
	if res.ID != "r1" || len(res.FuelTypes) != 1 || res.FuelTypes[0] != "DIESEL" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Diesel == nil || res.Diesel.Level == nil || res.Diesel.Level.Type != "start" || res.Diesel.Level.Value != 30 {
		t.Fatalf("unexpected diesel block: %+v", res.Diesel)
	}
	if res.Diesel.Daily != nil {
		t.Fatalf("unset daily reading must be null")
	}
	if res.Arla != nil {
		t.Fatalf("unselected fuel type must be null")
	}
}

func TestFromFuelRecordDetail(t *testing.T) {
	d := usecase.FuelRecordDetail{
		Record:      entities.FuelRecord{ID: "r1", VehicleID: "gone"},
		Responsible: &entities.Responsible{ID: "p1", Name: "Ana"},
	}
	body, err := json.Marshal(FromFuelRecordDetail(d))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["id"] != "r1" {
		t.Fatalf("embedded record fields must be flattened, got %v", got)
	}
	if got["vehicle"] != nil {
		t.Fatalf("dangling vehicle must be null, got %v", got["vehicle"])
	}
	resp, ok := got["responsible"].(map[string]any)
	if !ok || resp["name"] != "Ana" {
		t.Fatalf("unexpected responsible: %v", got["responsible"])
	}
}

func TestFromDashboard(t *testing.T) {
	res := FromDashboard(usecase.Dashboard{TotalRecords: 3, PeriodDescription: "Dia atual"})
	if res.TotalRecords != 3 || res.PeriodDescription != "Dia atual" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Models == nil || res.Recent == nil {
		t.Fatalf("lists must be empty, not null: %+v", res)
	}
	if res.Filter.StartDate != nil || res.Filter.EndDate != nil {
		t.Fatalf("zero dates must be omitted: %+v", res.Filter)
	}
}

func TestFromReport(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	p, err := report.ParsePeriod("monthly", "2025-03", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := FromReport(report.Build(p, nil, nil, nil, now), []string{"txt"})
	if res.Kind != "monthly" || res.Key != "2025-03" || res.Label != "março de 2025" {
		t.Fatalf("unexpected period fields: %+v", res)
	}
	if res.Records == nil || res.Vehicles == nil || res.Responsibles == nil {
		t.Fatalf("lists must be empty, not null: %+v", res)
	}
}
