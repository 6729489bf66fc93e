// Package viewstate models the dashboard selections as an immutable value
// moved forward by discrete actions.
package viewstate

import (
	"fmt"
	"time"

	"controle_abastecimento/internal/domain/consumption"
)

// State is the dashboard selection. The zero value is not usable; start
// from Initial.
type State struct {
	Mode      consumption.Mode
	Preset    consumption.Preset
	StartDate time.Time
	EndDate   time.Time
	Model     string
	Vehicle1  string
	Vehicle2  string
}

// Initial is today's preset, every model, all vehicles and no comparison.
func Initial() State {
	return State{
		Mode:     consumption.ModePreset,
		Preset:   consumption.PresetToday,
		Model:    consumption.AllModels,
		Vehicle1: consumption.AllVehicles,
	}
}

// Action transitions a State.
type Action interface {
	apply(State) State
}

// Reduce folds actions over s, returning the resulting state.
func Reduce(s State, actions ...Action) State {
	for _, a := range actions {
		if a != nil {
			s = a.apply(s)
		}
	}
	return s
}

type SelectPreset struct{ Preset consumption.Preset }

func (a SelectPreset) apply(s State) State {
	s.Mode = consumption.ModePreset
	s.Preset = a.Preset
	return s
}

// SetCustomRange stores the dates and switches to custom mode.
type SetCustomRange struct{ Start, End time.Time }

func (a SetCustomRange) apply(s State) State {
	s.Mode = consumption.ModeCustom
	s.StartDate = a.Start
	s.EndDate = a.End
	return s
}

// UseCustomRange switches mode keeping the stored dates.
type UseCustomRange struct{}

func (UseCustomRange) apply(s State) State {
	s.Mode = consumption.ModeCustom
	return s
}

type UsePresets struct{}

func (UsePresets) apply(s State) State {
	s.Mode = consumption.ModePreset
	return s
}

// FilterModel narrows the analysis to one vehicle model; "" resets it.
type FilterModel struct{ Model string }

func (a FilterModel) apply(s State) State {
	s.Model = a.Model
	if s.Model == "" {
		s.Model = consumption.AllModels
	}
	return s
}

// CompareVehicles selects the vehicles of the consumption comparison. An
// empty First means all vehicles; an empty Second disables the comparison.
type CompareVehicles struct{ First, Second string }

func (a CompareVehicles) apply(s State) State {
	s.Vehicle1 = a.First
	if s.Vehicle1 == "" {
		s.Vehicle1 = consumption.AllVehicles
	}
	s.Vehicle2 = a.Second
	return s
}

type ClearComparison struct{}

func (ClearComparison) apply(s State) State {
	s.Vehicle2 = ""
	return s
}

// Filter derives the period filter argument of consumption.Select.
func (s State) Filter() consumption.Filter {
	return consumption.Filter{
		Mode:      s.Mode,
		Preset:    s.Preset,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Model:     s.Model,
	}
}

// Comparing reports whether a second vehicle is selected.
func (s State) Comparing() bool {
	return s.Vehicle2 != ""
}

// CustomRangeValid is the validity flag of the custom range, shown by the client.
func (s State) CustomRangeValid() bool {
	return consumption.ValidCustomRange(s.StartDate, s.EndDate)
}

var presetLabels = map[consumption.Preset]string{
	consumption.PresetToday:      "Dia atual",
	consumption.PresetMonth:      "Mês atual",
	consumption.PresetLast90Days: "3 meses",
}

// Description is the period caption of the consumption analysis, e.g.
// "Mês atual" or "14 dias (01/03/2025 - 14/03/2025)".
func (s State) Description() string {
	if s.Mode == consumption.ModeCustom && s.CustomRangeValid() {
		return fmt.Sprintf("%d dias (%s - %s)",
			consumption.CustomRangeDays(s.StartDate, s.EndDate),
			s.StartDate.Format("02/01/2006"),
			s.EndDate.Format("02/01/2006"))
	}
	if label, ok := presetLabels[s.Preset]; ok {
		return label
	}
	return presetLabels[consumption.PresetToday]
}
