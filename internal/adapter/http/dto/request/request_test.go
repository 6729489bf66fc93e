package request

import (
	"errors"
	"testing"
	"time"

	"controle_abastecimento/internal/domain/entities"
)

func fp(v float64) *float64 { return &v }

func TestFuelRecordRequest_ToInput(t *testing.T) {
	t.Run("maps selectors to readings", func(t *testing.T) {
		r := FuelRecordRequest{
			ResponsibleID: "p1",
			VehicleID:     "v1",
			FuelTypes:     []string{"diesel", "ARLA"},
			Diesel: &FuelDataRequest{
				OdometerStart: fp(1),
				OdometerEnd:   fp(2),
				Level:         &ReadingRequest{Type: " End ", Value: fp(40)},
				Daily:         &ReadingRequest{Type: "start"},
				TotalRefueled: fp(80),
			},
		}
		in, err := r.ToInput()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(in.FuelTypes) != 2 || in.FuelTypes[0] != "diesel" {
			t.Fatalf("fuel types are passed through for normalization, got %v", in.FuelTypes)
		}
		if in.Diesel.Level != entities.EndReading(40) {
			t.Fatalf("unexpected level: %+v", in.Diesel.Level)
		}
		if in.Diesel.Daily.IsSet() {
			t.Fatalf("selector without value must be empty, got %+v", in.Diesel.Daily)
		}
		if !in.Arla.IsZero() {
			t.Fatalf("absent arla block must be zero, got %+v", in.Arla)
		}
		if in.Date != nil {
			t.Fatalf("expected nil date")
		}
	})

	t.Run("unknown selector", func(t *testing.T) {
		r := FuelRecordRequest{Arla: &FuelDataRequest{Daily: &ReadingRequest{Type: "middle", Value: fp(1)}}}
		if _, err := r.ToInput(); !errors.Is(err, ErrInvalidReadingType) {
			t.Fatalf("expected ErrInvalidReadingType, got %v", err)
		}
	})
}

func TestAverageQuery_ToInput(t *testing.T) {
	in := AverageQuery{RecordID: " r1 ", VehicleID: " v1 ", VehicleKm: fp(10), DieselTotalRefueled: fp(2)}.ToInput()
	if in.RecordID != "r1" || in.VehicleID != "v1" || *in.VehicleKm != 10 || *in.DieselTotalRefueled != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestDashboardQuery_ToQuery(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)

	q, err := DashboardQuery{Period: "month", StartDate: "2025-03-01", EndDate: "2025-03-31", Vehicle1: "v1"}.ToQuery(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.StartDate == nil || !q.StartDate.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected start: %v", q.StartDate)
	}
	if q.EndDate == nil || q.EndDate.Day() != 31 || q.Period != "month" || q.Vehicle1 != "v1" {
		t.Fatalf("unexpected query: %+v", q)
	}

	q, err = DashboardQuery{}.ToQuery(loc)
	if err != nil || q.StartDate != nil || q.EndDate != nil {
		t.Fatalf("expected empty dates, got %+v err=%v", q, err)
	}

	if _, err := (DashboardQuery{EndDate: "31/03/2025"}).ToQuery(loc); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
