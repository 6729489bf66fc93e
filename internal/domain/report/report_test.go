package report

import (
	"errors"
	"testing"
	"time"

	"controle_abastecimento/internal/domain/entities"
)

func f(v float64) *float64 { return &v }

func TestParsePeriod(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	now := time.Date(2025, time.March, 14, 22, 30, 0, 0, loc)

	t.Run("daily default key is today", func(t *testing.T) {
		p, err := ParsePeriod("daily", "", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Key != "2025-03-14" || p.Label() != "14/03/2025" {
			t.Fatalf("unexpected period: %+v label=%s", p, p.Label())
		}
		if p.Filename("txt") != "relatorio-abastecimento-daily-2025-03-14.txt" {
			t.Fatalf("unexpected filename: %s", p.Filename("txt"))
		}
	})

	t.Run("monthly", func(t *testing.T) {
		p, err := ParsePeriod("monthly", "2025-03", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Label() != "março de 2025" {
			t.Fatalf("unexpected label: %s", p.Label())
		}
		if !p.Contains(time.Date(2025, time.March, 31, 23, 59, 0, 0, loc)) || p.Contains(time.Date(2025, time.April, 1, 0, 0, 0, 0, loc)) {
			t.Fatalf("unexpected month bounds: %+v", p)
		}
		if p.Filename("xlsx") != "relatorio-abastecimento-monthly-2025-03.xlsx" {
			t.Fatalf("unexpected filename: %s", p.Filename("xlsx"))
		}
	})

	t.Run("day boundary follows the location", func(t *testing.T) {
		p, _ := ParsePeriod("daily", "2025-03-14", now)
		// 01:30 UTC on the 15th is still the 14th in BRT
		if !p.Contains(time.Date(2025, time.March, 15, 1, 30, 0, 0, time.UTC)) {
			t.Fatalf("expected record inside the local day")
		}
	})

	t.Run("errors", func(t *testing.T) {
		if _, err := ParsePeriod("weekly", "", now); !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
		if _, err := ParsePeriod("daily", "14/03/2025", now); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
		if _, err := ParsePeriod("monthly", "2025-13", now); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey, got %v", err)
		}
	})
}

func TestBuild(t *testing.T) {
	now := time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)
	p, _ := ParsePeriod("daily", "2025-03-14", now)

	responsibles := []entities.Responsible{{ID: "p1", Name: "Ana", Phone: "11999990000"}}
	vehicles := []entities.Vehicle{{ID: "v1", Plate: "AAA1A11", Model: "Axor"}}
	all := []entities.FuelRecord{
		{ID: "r3", Date: time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC), Diesel: entities.FuelData{Daily: entities.EndReading(700)}},
		{ID: "r2", ResponsibleID: "p1", VehicleID: "v1", Date: time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC), Diesel: entities.FuelData{TotalRefueled: f(80), Daily: entities.StartReading(900)}, Average: f(5)},
		{ID: "r1", ResponsibleID: "gone", VehicleID: "v1", Date: time.Date(2025, time.March, 14, 7, 0, 0, 0, time.UTC), Diesel: entities.FuelData{TotalRefueled: f(20)}},
	}

	doc := Build(p, all, responsibles, vehicles, now)
	if len(doc.Rows) != 2 || doc.Rows[0].Record.ID != "r2" || doc.Rows[1].Record.ID != "r1" {
		t.Fatalf("unexpected rows: %+v", doc.Rows)
	}
	if doc.Rows[0].ResponsibleName() != "Ana" || doc.Rows[1].Responsible != nil || doc.Rows[1].Plate() != "AAA1A11" {
		t.Fatalf("unexpected resolution: %+v", doc.Rows)
	}
	if doc.Summary.Records != 2 || doc.Summary.DieselRefueled != 100 || doc.Summary.MeanConsumption != 2.5 {
		t.Fatalf("unexpected summary: %+v", doc.Summary)
	}
	if doc.Summary.LastDieselLevel != 700 {
		t.Fatalf("levels must come from the whole history, got %v", doc.Summary.LastDieselLevel)
	}
	if len(doc.Vehicles) != 1 || len(doc.Responsibles) != 1 {
		t.Fatalf("unexpected breakdowns: %+v %+v", doc.Vehicles, doc.Responsibles)
	}
	if doc.Title() != "RELATÓRIO DE ABASTECIMENTO - 14/03/2025" {
		t.Fatalf("unexpected title: %s", doc.Title())
	}
	if doc.Generated() != "14/03/2025 às 18:00" {
		t.Fatalf("unexpected generated at: %s", doc.Generated())
	}
}

func TestFormatting(t *testing.T) {
	if Number(10400) != "10400" || Number(4.5) != "4.5" {
		t.Fatalf("unexpected Number output")
	}
	if Fixed(5) != "5.00" || Fixed(3.333) != "3.33" {
		t.Fatalf("unexpected Fixed output")
	}
}
