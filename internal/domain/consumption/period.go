package consumption

import (
	"time"

	"controle_abastecimento/internal/domain/entities"
)

type Preset string

const (
	PresetToday      Preset = "today"
	PresetMonth      Preset = "month"
	PresetLast90Days Preset = "last-90-days"
)

// ParsePreset accepts the preset names and the legacy "90" alias.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case PresetToday, PresetMonth, PresetLast90Days:
		return Preset(s), true
	}
	if s == "90" {
		return PresetLast90Days, true
	}
	return "", false
}

type Mode string

const (
	ModePreset Mode = "preset"
	ModeCustom Mode = "custom"
)

// MaxCustomRangeDays bounds the span of a custom reporting range.
const MaxCustomRangeDays = 90

// AllModels disables the vehicle model constraint.
const AllModels = "all"

// Window is an inclusive time interval.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// PresetWindow resolves a preset against now. Calendar boundaries follow
// now's location. Unknown presets resolve like PresetToday.
func PresetWindow(p Preset, now time.Time) Window {
	switch p {
	case PresetMonth:
		y, m, _ := now.Date()
		return Window{Start: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), End: EndOfDay(now)}
	case PresetLast90Days:
		return Window{Start: now.AddDate(0, 0, -90), End: now}
	default:
		return Window{Start: StartOfDay(now), End: EndOfDay(now)}
	}
}

// CustomRangeDays is the number of calendar days between the dates of start
// and end, each read in its own location.
func CustomRangeDays(start, end time.Time) int {
	days := int(civilDate(end).Sub(civilDate(start)).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidCustomRange reports whether start..end may be used as a custom period.
func ValidCustomRange(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return !start.After(end) && CustomRangeDays(start, end) <= MaxCustomRangeDays
}

// CustomWindow covers start's midnight through the whole of end's day.
// ok is false for an invalid range.
func CustomWindow(start, end time.Time) (Window, bool) {
	if !ValidCustomRange(start, end) {
		return Window{}, false
	}
	return Window{Start: StartOfDay(start), End: EndOfDay(end)}, true
}

// Filter selects the records of the consumption analysis views.
type Filter struct {
	Mode      Mode
	Preset    Preset
	StartDate time.Time
	EndDate   time.Time
	Model     string
}

// Window resolves the filter's interval. ok is false when the filter is in
// custom mode with an invalid range, which selects nothing.
func (f Filter) Window(now time.Time) (Window, bool) {
	if f.Mode == ModeCustom {
		return CustomWindow(f.StartDate, f.EndDate)
	}
	return PresetWindow(f.Preset, now), true
}

// Select keeps, in their original order, the records inside the filter window
// that carry a positive average and whose vehicle matches the model filter.
func Select(records []entities.FuelRecord, vehicles []entities.Vehicle, f Filter, now time.Time) []entities.FuelRecord {
	out := []entities.FuelRecord{}
	w, ok := f.Window(now)
	if !ok {
		return out
	}

	var models map[string]string
	if f.Model != "" && f.Model != AllModels {
		models = make(map[string]string, len(vehicles))
		for _, v := range vehicles {
			models[v.ID] = v.Model
		}
	}

	for _, r := range records {
		if !w.Contains(r.Date) || !r.HasPositiveAverage() {
			continue
		}
		if models != nil {
			model, found := models[r.VehicleID]
			if !found || model != f.Model {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
