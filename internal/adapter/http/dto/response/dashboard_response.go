package response

import (
	"time"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/usecase"
)

type DashboardFilterResponse struct {
	Mode      string     `json:"mode"`
	Preset    string     `json:"preset"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Model     string     `json:"model"`
	Vehicle1  string     `json:"vehicle1"`
	Vehicle2  string     `json:"vehicle2,omitempty"`
}

type DashboardResponse struct {
	Filter            DashboardFilterResponse `json:"filter"`
	PeriodDescription string                  `json:"period_description"`
	CustomRangeValid  bool                    `json:"custom_range_valid"`

	TotalRecords    int     `json:"total_records"`
	TodayRecords    int     `json:"today_records"`
	LastDieselLevel float64 `json:"last_diesel_level"`
	LastArlaLevel   float64 `json:"last_arla_level"`

	LifetimeDieselRefueled float64 `json:"lifetime_diesel_refueled"`
	LifetimeArlaRefueled   float64 `json:"lifetime_arla_refueled"`

	PeriodRecords        int     `json:"period_records"`
	PeriodDieselRefueled float64 `json:"period_diesel_refueled"`
	PeriodArlaRefueled   float64 `json:"period_arla_refueled"`

	Vehicle1Consumption float64                 `json:"vehicle1_consumption"`
	Comparison          *consumption.Comparison `json:"comparison"`

	Recent []FuelRecordDetailResponse `json:"recent"`
	Models []string                   `json:"models"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	s := d.State
	filter := DashboardFilterResponse{
		Mode:     string(s.Mode),
		Preset:   string(s.Preset),
		Model:    s.Model,
		Vehicle1: s.Vehicle1,
		Vehicle2: s.Vehicle2,
	}
	if !s.StartDate.IsZero() {
		filter.StartDate = &s.StartDate
	}
	if !s.EndDate.IsZero() {
		filter.EndDate = &s.EndDate
	}

	models := d.Models
	if models == nil {
		models = []string{}
	}

	return DashboardResponse{
		Filter:                 filter,
		PeriodDescription:      d.PeriodDescription,
		CustomRangeValid:       d.CustomRangeValid,
		TotalRecords:           d.TotalRecords,
		TodayRecords:           d.TodayRecords,
		LastDieselLevel:        d.LastDieselLevel,
		LastArlaLevel:          d.LastArlaLevel,
		LifetimeDieselRefueled: d.LifetimeDieselRefueled,
		LifetimeArlaRefueled:   d.LifetimeArlaRefueled,
		PeriodRecords:          d.PeriodRecords,
		PeriodDieselRefueled:   d.PeriodDieselRefueled,
		PeriodArlaRefueled:     d.PeriodArlaRefueled,
		Vehicle1Consumption:    d.Vehicle1Consumption,
		Comparison:             d.Comparison,
		Recent:                 FromFuelRecordDetails(d.Recent),
		Models:                 models,
	}
}
