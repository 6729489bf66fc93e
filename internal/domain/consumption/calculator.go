// Package consumption holds the pure consumption rules of the fuel log: the
// km/l calculator, the reporting period filter and the aggregations shared by
// the dashboard and the exported reports.
package consumption

import (
	"time"

	"controle_abastecimento/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AverageInput carries the candidate record fields the calculator needs.
// RecordID is set when an existing record is being edited so it is left out
// of its own history. A non-zero Before restricts the history to readings
// dated strictly before it.
type AverageInput struct {
	RecordID            string
	Before              time.Time
	VehicleID           string
	VehicleKm           *float64
	DieselTotalRefueled *float64
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Average derives the km/l of a candidate record from the latest prior
// vehicle_km reading of the same vehicle. ok is false when no average can be
// recorded: first reading of the vehicle, missing or zero inputs, or a
// reading that does not move forward.
func Average(history []entities.FuelRecord, in AverageInput) (avg float64, ok bool) {
	if in.VehicleID == "" || in.VehicleKm == nil || *in.VehicleKm == 0 {
		return 0, false
	}
	if in.DieselTotalRefueled == nil || *in.DieselTotalRefueled <= 0 {
		return 0, false
	}

	if !in.Before.IsZero() {
		history = datedBefore(history, in.Before)
	}
	lastKm, found := LastVehicleKm(history, in.VehicleID, in.RecordID)
	if !found {
		return 0, false
	}

	diff := *in.VehicleKm - lastKm
	if diff <= 0 {
		return 0, false
	}
	return Round2(diff / *in.DieselTotalRefueled), true
}

// LastVehicleKm returns the vehicle_km of the most recent record (by event
// date) of vehicleID that carries a non-zero reading. excludeID is skipped.
func LastVehicleKm(history []entities.FuelRecord, vehicleID, excludeID string) (float64, bool) {
	rec, ok := latest(history, func(r entities.FuelRecord) bool {
		if r.VehicleID != vehicleID || (excludeID != "" && r.ID == excludeID) {
			return false
		}
		return r.VehicleKm != nil && *r.VehicleKm != 0
	})
	if !ok {
		return 0, false
	}
	return *rec.VehicleKm, true
}

func datedBefore(history []entities.FuelRecord, t time.Time) []entities.FuelRecord {
	out := make([]entities.FuelRecord, 0, len(history))
	for _, r := range history {
		if r.Date.Before(t) {
			out = append(out, r)
		}
	}
	return out
}

// SuggestOdometerStart returns the latest odometer end recorded for the fuel
// type across all vehicles, used to pre-fill the odometer start of a new record.
func SuggestOdometerStart(history []entities.FuelRecord, t entities.FuelType) (float64, bool) {
	rec, ok := latest(history, func(r entities.FuelRecord) bool {
		if !r.Has(t) {
			return false
		}
		end := r.Fuel(t).OdometerEnd
		return end != nil && *end != 0
	})
	if !ok {
		return 0, false
	}
	return *rec.Fuel(t).OdometerEnd, true
}

// latest picks the matching record with the greatest Date. On ties the
// earlier element of records wins.
func latest(records []entities.FuelRecord, match func(entities.FuelRecord) bool) (entities.FuelRecord, bool) {
	var (
		best  entities.FuelRecord
		found bool
	)
	for _, r := range records {
		if !match(r) {
			continue
		}
		if !found || r.Date.After(best.Date) {
			best = r
			found = true
		}
	}
	return best, found
}
