package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/domain/viewstate"
	"controle_abastecimento/internal/usecase/interfaces"
)

var ErrInvalidPeriod = errors.New("invalid dashboard period")

// RecentRecordsLimit is the size of the latest refuelings list.
const RecentRecordsLimit = 5

// DashboardQuery carries the dashboard selections. A complete StartDate /
// EndDate pair switches to the custom range; otherwise Period picks a preset.
type DashboardQuery struct {
	Period    string
	StartDate *time.Time
	EndDate   *time.Time
	Model     string
	Vehicle1  string
	Vehicle2  string
}

type Dashboard struct {
	State             viewstate.State
	PeriodDescription string
	CustomRangeValid  bool

	TotalRecords    int
	TodayRecords    int
	LastDieselLevel float64
	LastArlaLevel   float64

	LifetimeDieselRefueled float64
	LifetimeArlaRefueled   float64

	PeriodRecords        int
	PeriodDieselRefueled float64
	PeriodArlaRefueled   float64

	Vehicle1Consumption float64
	Comparison          *consumption.Comparison

	Recent []FuelRecordDetail
	Models []string
}

type IDashboardUseCase interface {
	Get(ctx context.Context, q DashboardQuery) (Dashboard, error)
}

type DashboardUseCase struct {
	records      interfaces.IFuelRecordRepository
	responsibles interfaces.IResponsibleRepository
	vehicles     interfaces.IVehicleRepository
	now          func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	records interfaces.IFuelRecordRepository,
	responsibles interfaces.IResponsibleRepository,
	vehicles interfaces.IVehicleRepository,
	loc *time.Location,
) *DashboardUseCase {
	return &DashboardUseCase{
		records:      records,
		responsibles: responsibles,
		vehicles:     vehicles,
		now:          func() time.Time { return time.Now().In(loc) },
	}
}

// State folds the query into dashboard actions over the initial state.
func (q DashboardQuery) State() (viewstate.State, error) {
	var actions []viewstate.Action

	if p := strings.TrimSpace(q.Period); p != "" {
		preset, ok := consumption.ParsePreset(p)
		if !ok {
			return viewstate.State{}, ErrInvalidPeriod
		}
		actions = append(actions, viewstate.SelectPreset{Preset: preset})
	}
	if q.StartDate != nil && q.EndDate != nil {
		actions = append(actions, viewstate.SetCustomRange{Start: *q.StartDate, End: *q.EndDate})
	}
	actions = append(actions,
		viewstate.FilterModel{Model: strings.TrimSpace(q.Model)},
		viewstate.CompareVehicles{First: strings.TrimSpace(q.Vehicle1), Second: strings.TrimSpace(q.Vehicle2)},
	)

	return viewstate.Reduce(viewstate.Initial(), actions...), nil
}

func (u *DashboardUseCase) Get(ctx context.Context, q DashboardQuery) (Dashboard, error) {
	state, err := q.State()
	if err != nil {
		return Dashboard{}, err
	}

	data, err := loadCollections(ctx, u.records, u.responsibles, u.vehicles)
	if err != nil {
		return Dashboard{}, err
	}

	now := u.now()
	selected := consumption.Select(data.records, data.vehicles, state.Filter(), now)
	today := consumption.PresetWindow(consumption.PresetToday, now)

	d := Dashboard{
		State:             state,
		PeriodDescription: state.Description(),
		CustomRangeValid:  state.CustomRangeValid(),

		TotalRecords:    len(data.records),
		LastDieselLevel: consumption.LastKnownLevel(data.records, entities.FuelTypeDiesel),
		LastArlaLevel:   consumption.LastKnownLevel(data.records, entities.FuelTypeArla),

		LifetimeDieselRefueled: consumption.TotalRefueled(data.records, entities.FuelTypeDiesel),
		LifetimeArlaRefueled:   consumption.TotalRefueled(data.records, entities.FuelTypeArla),

		PeriodRecords:        len(selected),
		PeriodDieselRefueled: consumption.TotalRefueled(selected, entities.FuelTypeDiesel),
		PeriodArlaRefueled:   consumption.TotalRefueled(selected, entities.FuelTypeArla),

		Vehicle1Consumption: consumption.MeanConsumption(selected, state.Vehicle1),
		Models:              consumption.Models(data.vehicles),
		Recent:              []FuelRecordDetail{},
	}

	for _, r := range data.records {
		if today.Contains(r.Date) {
			d.TodayRecords++
		}
	}
	if state.Comparing() {
		cmp := consumption.Compare(selected, state.Vehicle1, state.Vehicle2)
		d.Comparison = &cmp
	}
	for _, r := range consumption.Recent(data.records, RecentRecordsLimit) {
		d.Recent = append(d.Recent, data.resolve(r))
	}
	return d, nil
}
