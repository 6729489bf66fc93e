package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/entities"
	mock_interfaces "controle_abastecimento/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fp(v float64) *float64 { return &v }

type fuelMocks struct {
	records      *mock_interfaces.MockIFuelRecordRepository
	responsibles *mock_interfaces.MockIResponsibleRepository
	vehicles     *mock_interfaces.MockIVehicleRepository
}

func newFuelRecordUseCase(t *testing.T, now time.Time) (*FuelRecordUseCase, fuelMocks) {
	ctrl := gomock.NewController(t)
	m := fuelMocks{
		records:      mock_interfaces.NewMockIFuelRecordRepository(ctrl),
		responsibles: mock_interfaces.NewMockIResponsibleRepository(ctrl),
		vehicles:     mock_interfaces.NewMockIVehicleRepository(ctrl),
	}
	uc := NewFuelRecordUseCase(m.records, m.responsibles, m.vehicles)
	uc.now = func() time.Time { return now }
	return uc, m
}

func dieselInput() FuelRecordInput {
	return FuelRecordInput{
		ResponsibleID: "p1",
		VehicleID:     "v1",
		FuelTypes:     []entities.FuelType{entities.FuelTypeDiesel},
		Diesel: entities.FuelData{
			OdometerStart: fp(100),
			OdometerEnd:   fp(180),
			TotalRefueled: fp(80),
		},
		VehicleKm: fp(10400),
	}
}

func TestFuelRecordUseCase_CreateValidation(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		mutate func(in *FuelRecordInput)
		want   error
		loads  bool
	}{
		{name: "missing responsible", mutate: func(in *FuelRecordInput) { in.ResponsibleID = " " }, want: ErrMissingRequiredFields},
		{name: "missing vehicle", mutate: func(in *FuelRecordInput) { in.VehicleID = "" }, want: ErrMissingRequiredFields},
		{name: "no fuel type", mutate: func(in *FuelRecordInput) { in.FuelTypes = nil }, want: ErrMissingRequiredFields},
		{name: "unknown fuel type", mutate: func(in *FuelRecordInput) { in.FuelTypes = []entities.FuelType{"GASOLINA"} }, want: ErrInvalidFuelType},
		{name: "diesel odometer end missing", mutate: func(in *FuelRecordInput) { in.Diesel.OdometerEnd = nil }, want: ErrDieselOdometerRequired, loads: true},
		{name: "diesel total missing", mutate: func(in *FuelRecordInput) { in.Diesel.TotalRefueled = nil }, want: ErrDieselTotalRequired, loads: true},
		{
			name: "arla odometers missing",
			mutate: func(in *FuelRecordInput) {
				in.FuelTypes = []entities.FuelType{entities.FuelTypeDiesel, entities.FuelTypeArla}
				in.Arla = entities.FuelData{TotalRefueled: fp(20)}
			},
			want:  ErrArlaOdometerRequired,
			loads: true,
		},
		{
			name: "arla total missing",
			mutate: func(in *FuelRecordInput) {
				in.FuelTypes = []entities.FuelType{entities.FuelTypeArla}
				in.Arla = entities.FuelData{OdometerStart: fp(1), OdometerEnd: fp(2)}
			},
			want:  ErrArlaTotalRequired,
			loads: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newFuelRecordUseCase(t, now)
			if tc.loads {
				m.records.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
			}
			in := dieselInput()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFuelRecordUseCase_Create(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	history := []entities.FuelRecord{
		{
			ID:        "r1",
			VehicleID: "v1",
			Date:      now.Add(-24 * time.Hour),
			FuelTypes: []entities.FuelType{entities.FuelTypeDiesel},
			Diesel:    entities.FuelData{OdometerStart: fp(50), OdometerEnd: fp(100), TotalRefueled: fp(40)},
			VehicleKm: fp(10000),
		},
	}

	t.Run("store unavailable", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("offline"))

		_, err := uc.Create(context.Background(), dieselInput())
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})

	t.Run("derives average and defaults date", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(history, nil)
		m.records.EXPECT().Add(gomock.Any(), gomock.AssignableToTypeOf(entities.FuelRecord{})).DoAndReturn(
			func(_ context.Context, r entities.FuelRecord) (entities.FuelRecord, error) {
				if r.Average == nil || *r.Average != 5 {
					t.Fatalf("expected average 5, got %v", r.Average)
				}
				if !r.Date.Equal(now) {
					t.Fatalf("expected date to default to now, got %v", r.Date)
				}
				r.ID = "r2"
				return r, nil
			},
		)

		res, err := uc.Create(context.Background(), dieselInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "r2" {
			t.Fatalf("unexpected record: %+v", res)
		}
	})

	t.Run("pre-fills missing odometer start", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(history, nil)
		m.records.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FuelRecord) (entities.FuelRecord, error) {
				if r.Diesel.OdometerStart == nil || *r.Diesel.OdometerStart != 100 {
					t.Fatalf("expected odometer start 100, got %v", r.Diesel.OdometerStart)
				}
				return r, nil
			},
		)

		in := dieselInput()
		in.Diesel.OdometerStart = nil
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("drops unselected fuel data and empty selectors", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		m.records.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FuelRecord) (entities.FuelRecord, error) {
				if !r.Arla.IsZero() {
					t.Fatalf("expected arla data to be dropped, got %+v", r.Arla)
				}
				if r.Diesel.Level.IsSet() || r.Diesel.Daily != entities.EndReading(700) {
					t.Fatalf("unexpected readings: %+v", r.Diesel)
				}
				if r.Average != nil {
					t.Fatalf("first reading must not have an average, got %v", *r.Average)
				}
				if len(r.FuelTypes) != 1 || r.FuelTypes[0] != entities.FuelTypeDiesel {
					t.Fatalf("unexpected fuel types: %v", r.FuelTypes)
				}
				return r, nil
			},
		)

		in := dieselInput()
		in.FuelTypes = []entities.FuelType{"diesel", entities.FuelTypeDiesel}
		in.Diesel.Level = entities.Reading{Kind: "sideways", Value: 3}
		in.Diesel.Daily = entities.EndReading(700)
		in.Arla = entities.FuelData{TotalRefueled: fp(10)}
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("add failure is returned as is", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		m.records.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.FuelRecord{}, errors.New("db"))

		_, err := uc.Create(context.Background(), dieselInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestFuelRecordUseCase_Update(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	stored := entities.FuelRecord{
		ID:        "r2",
		VehicleID: "v1",
		Date:      now.Add(-time.Hour),
		CreatedAt: now.Add(-time.Hour),
		VehicleKm: fp(10400),
	}
	history := []entities.FuelRecord{
		stored,
		{ID: "r1", VehicleID: "v1", Date: now.Add(-48 * time.Hour), VehicleKm: fp(10000)},
	}

	t.Run("invalid id", func(t *testing.T) {
		uc, _ := newFuelRecordUseCase(t, now)
		if _, err := uc.Update(context.Background(), " ", dieselInput()); !errors.Is(err, ErrInvalidFuelRecordID) {
			t.Fatalf("expected ErrInvalidFuelRecordID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetByID(gomock.Any(), "r9").Return(entities.FuelRecord{}, nil)

		if _, err := uc.Update(context.Background(), "r9", dieselInput()); !errors.Is(err, ErrFuelRecordNotFound) {
			t.Fatalf("expected ErrFuelRecordNotFound, got %v", err)
		}
	})

	t.Run("keeps date, excludes itself and does not pre-fill", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetByID(gomock.Any(), "r2").Return(stored, nil)
		m.records.EXPECT().GetAll(gomock.Any()).Return(history, nil)
		m.records.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FuelRecord) (entities.FuelRecord, error) {
				if r.ID != "r2" || !r.Date.Equal(stored.Date) || !r.CreatedAt.Equal(stored.CreatedAt) {
					t.Fatalf("identity fields not kept: %+v", r)
				}
				// (10400 - 10000) / 80
				if r.Average == nil || *r.Average != 5 {
					t.Fatalf("expected average 5, got %v", r.Average)
				}
				return r, nil
			},
		)

		if _, err := uc.Update(context.Background(), "r2", dieselInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("explicit date wins", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		newDate := now.Add(-72 * time.Hour)
		m.records.EXPECT().GetByID(gomock.Any(), "r2").Return(stored, nil)
		m.records.EXPECT().GetAll(gomock.Any()).Return(history, nil)
		m.records.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FuelRecord) (entities.FuelRecord, error) {
				if !r.Date.Equal(newDate) {
					t.Fatalf("expected new date, got %v", r.Date)
				}
				return r, nil
			},
		)

		in := dieselInput()
		in.Date = &newDate
		if _, err := uc.Update(context.Background(), "r2", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("editing a middle record keeps its average", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		jan := func(d int) time.Time { return time.Date(2025, time.January, d, 8, 0, 0, 0, time.UTC) }
		middle := entities.FuelRecord{ID: "b", VehicleID: "v1", Date: jan(5), CreatedAt: jan(5), VehicleKm: fp(10400), Average: fp(5)}
		chain := []entities.FuelRecord{
			{ID: "a", VehicleID: "v1", Date: jan(1), VehicleKm: fp(10000)},
			middle,
			{ID: "c", VehicleID: "v1", Date: jan(10), VehicleKm: fp(10800), Average: fp(5)},
		}
		m.records.EXPECT().GetByID(gomock.Any(), "b").Return(middle, nil)
		m.records.EXPECT().GetAll(gomock.Any()).Return(chain, nil)
		m.records.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.FuelRecord) (entities.FuelRecord, error) {
				// (10400 - 10000) / 80, the later reading of c does not count
				if r.Average == nil || *r.Average != 5 {
					t.Fatalf("expected average 5, got %v", r.Average)
				}
				if r.Observations != "pneu trocado" {
					t.Fatalf("expected observations to be updated, got %q", r.Observations)
				}
				return r, nil
			},
		)

		in := dieselInput()
		in.Observations = "pneu trocado"
		if _, err := uc.Update(context.Background(), "b", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation before any load", func(t *testing.T) {
		uc, _ := newFuelRecordUseCase(t, now)
		in := dieselInput()
		in.Diesel.OdometerStart = nil
		if _, err := uc.Update(context.Background(), "r2", in); !errors.Is(err, ErrDieselOdometerRequired) {
			t.Fatalf("expected ErrDieselOdometerRequired, got %v", err)
		}
	})
}

func TestFuelRecordUseCase_GetAndDelete(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

	t.Run("get resolves references and tolerates dangling ones", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.FuelRecord{ID: "r1", ResponsibleID: "gone", VehicleID: "v1"}, nil)
		m.responsibles.EXPECT().GetAll(gomock.Any()).Return([]entities.Responsible{{ID: "p1", Name: "Ana"}}, nil)
		m.vehicles.EXPECT().GetAll(gomock.Any()).Return([]entities.Vehicle{{ID: "v1", Plate: "AAA1A11"}}, nil)

		detail, err := uc.Get(context.Background(), "r1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Responsible != nil {
			t.Fatalf("expected dangling responsible, got %+v", detail.Responsible)
		}
		if detail.Vehicle == nil || detail.Vehicle.Plate != "AAA1A11" {
			t.Fatalf("expected resolved vehicle, got %+v", detail.Vehicle)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetByID(gomock.Any(), "r1").Return(entities.FuelRecord{}, nil)

		if _, err := uc.Get(context.Background(), "r1"); !errors.Is(err, ErrFuelRecordNotFound) {
			t.Fatalf("expected ErrFuelRecordNotFound, got %v", err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().Delete(gomock.Any(), "r1").Return(entities.FuelRecord{}, nil)

		if err := uc.Delete(context.Background(), "r1"); !errors.Is(err, ErrFuelRecordNotFound) {
			t.Fatalf("expected ErrFuelRecordNotFound, got %v", err)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().Delete(gomock.Any(), "r1").Return(entities.FuelRecord{ID: "r1"}, nil)

		if err := uc.Delete(context.Background(), "r1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFuelRecordUseCase_FormHelpers(t *testing.T) {
	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	history := []entities.FuelRecord{
		{ID: "r2", VehicleID: "v1", Date: now.Add(-time.Hour), FuelTypes: []entities.FuelType{entities.FuelTypeArla}, Arla: entities.FuelData{OdometerEnd: fp(33)}, VehicleKm: fp(10400)},
		{ID: "r1", VehicleID: "v1", Date: now.Add(-48 * time.Hour), FuelTypes: []entities.FuelType{entities.FuelTypeDiesel}, Diesel: entities.FuelData{OdometerEnd: fp(180)}, VehicleKm: fp(10000)},
	}

	t.Run("odometer suggestions", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(history, nil)

		s, err := uc.OdometerSuggestions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Diesel == nil || *s.Diesel != 180 || s.Arla == nil || *s.Arla != 33 {
			t.Fatalf("unexpected suggestions: %+v", s)
		}
	})

	t.Run("preview average", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(history, nil)

		avg, err := uc.PreviewAverage(context.Background(), consumption.AverageInput{VehicleID: "v1", VehicleKm: fp(10700), DieselTotalRefueled: fp(100)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if avg == nil || *avg != 3 {
			t.Fatalf("expected 3, got %v", avg)
		}
	})

	t.Run("preview of an edit ignores later readings", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		withLater := append([]entities.FuelRecord{{ID: "r3", VehicleID: "v1", Date: now.Add(-30 * time.Minute), VehicleKm: fp(10900)}}, history...)
		m.records.EXPECT().GetAll(gomock.Any()).Return(withLater, nil)

		in := consumption.AverageInput{RecordID: "r2", VehicleID: "v1", VehicleKm: fp(10400), DieselTotalRefueled: fp(80)}
		avg, err := uc.PreviewAverage(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if avg == nil || *avg != 5 {
			t.Fatalf("expected 5, got %v", avg)
		}
	})

	t.Run("preview without prior reading", func(t *testing.T) {
		uc, m := newFuelRecordUseCase(t, now)
		m.records.EXPECT().GetAll(gomock.Any()).Return(history, nil)

		avg, err := uc.PreviewAverage(context.Background(), consumption.AverageInput{VehicleID: "v2", VehicleKm: fp(500), DieselTotalRefueled: fp(50)})
		if err != nil || avg != nil {
			t.Fatalf("expected no average, got %v err=%v", avg, err)
		}
	})
}
