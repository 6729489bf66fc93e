package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/domain/report"
	mock_interfaces "controle_abastecimento/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase(t *testing.T) {
	now := time.Date(2025, time.March, 14, 18, 0, 0, 0, time.UTC)
	records := []entities.FuelRecord{
		{ID: "r2", VehicleID: "v1", Date: now.Add(-time.Hour), Diesel: entities.FuelData{TotalRefueled: fp(40)}},
		{ID: "r1", VehicleID: "v1", Date: now.AddDate(0, 0, -10), Diesel: entities.FuelData{TotalRefueled: fp(60)}},
	}

	setup := func(t *testing.T) (*ReportUseCase, fuelMocks, *mock_interfaces.MockIReportRenderer) {
		ctrl := gomock.NewController(t)
		m := fuelMocks{
			records:      mock_interfaces.NewMockIFuelRecordRepository(ctrl),
			responsibles: mock_interfaces.NewMockIResponsibleRepository(ctrl),
			vehicles:     mock_interfaces.NewMockIVehicleRepository(ctrl),
		}
		renderer := mock_interfaces.NewMockIReportRenderer(ctrl)
		renderer.EXPECT().Format().Return("txt").AnyTimes()
		uc := NewReportUseCase(m.records, m.responsibles, m.vehicles, time.UTC, renderer)
		uc.now = func() time.Time { return now }
		return uc, m, renderer
	}
	expectLoad := func(m fuelMocks) {
		m.records.EXPECT().GetAll(gomock.Any()).Return(records, nil)
		m.responsibles.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		m.vehicles.EXPECT().GetAll(gomock.Any()).Return([]entities.Vehicle{{ID: "v1", Plate: "AAA1A11", Model: "Axor"}}, nil)
	}

	t.Run("invalid period", func(t *testing.T) {
		uc, _, _ := setup(t)
		if _, err := uc.Build(context.Background(), "weekly", ""); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
		if _, err := uc.Build(context.Background(), "daily", "2025/03/14"); !errors.Is(err, ErrInvalidReportPeriod) {
			t.Fatalf("expected ErrInvalidReportPeriod, got %v", err)
		}
	})

	t.Run("monthly build", func(t *testing.T) {
		uc, m, _ := setup(t)
		expectLoad(m)

		doc, err := uc.Build(context.Background(), "monthly", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Period.Key != "2025-03" || len(doc.Rows) != 2 || doc.Summary.DieselRefueled != 100 {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if doc.Rows[0].Vehicle == nil || doc.Rows[0].Plate() != "AAA1A11" {
			t.Fatalf("expected resolved vehicle: %+v", doc.Rows[0])
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		uc, _, _ := setup(t)
		if _, err := uc.Export(context.Background(), "daily", "", "docx"); !errors.Is(err, ErrUnsupportedReportFormat) {
			t.Fatalf("expected ErrUnsupportedReportFormat, got %v", err)
		}
	})

	t.Run("export", func(t *testing.T) {
		uc, m, renderer := setup(t)
		expectLoad(m)
		renderer.EXPECT().Extension().Return("txt")
		renderer.EXPECT().ContentType().Return("text/plain; charset=utf-8")
		renderer.EXPECT().Render(gomock.Any(), gomock.AssignableToTypeOf(report.Document{})).DoAndReturn(
			func(w io.Writer, doc report.Document) error {
				if len(doc.Rows) != 1 || doc.Rows[0].Record.ID != "r2" {
					t.Fatalf("unexpected daily rows: %+v", doc.Rows)
				}
				_, err := io.WriteString(w, "ok")
				return err
			},
		)

		file, err := uc.Export(context.Background(), "daily", "2025-03-14", " TXT ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if file.Filename != "relatorio-abastecimento-daily-2025-03-14.txt" || string(file.Content) != "ok" || file.ContentType != "text/plain; charset=utf-8" {
			t.Fatalf("unexpected file: %+v", file)
		}
	})

	t.Run("render failure", func(t *testing.T) {
		uc, m, renderer := setup(t)
		expectLoad(m)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(errors.New("broken"))

		if _, err := uc.Export(context.Background(), "daily", "", "txt"); err == nil || err.Error() != "broken" {
			t.Fatalf("expected render error, got %v", err)
		}
	})

	t.Run("formats", func(t *testing.T) {
		uc, _, _ := setup(t)
		if got := uc.Formats(); len(got) != 1 || got[0] != "txt" {
			t.Fatalf("unexpected formats: %v", got)
		}
	})
}
