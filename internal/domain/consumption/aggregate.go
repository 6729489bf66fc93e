package consumption

import (
	"sort"

	"controle_abastecimento/internal/domain/entities"
)

// AllVehicles makes MeanConsumption and Compare consider every vehicle.
const AllVehicles = "all"

// Summary is the headline block shared by the dashboard and the reports.
type Summary struct {
	Records         int     `json:"records"`
	LastDieselLevel float64 `json:"last_diesel_level"`
	LastArlaLevel   float64 `json:"last_arla_level"`
	DieselRefueled  float64 `json:"diesel_refueled"`
	ArlaRefueled    float64 `json:"arla_refueled"`
	MeanConsumption float64 `json:"mean_consumption"`
}

// Summarize builds the summary of selected. Last known levels always come
// from the full history, whatever the selection.
func Summarize(all, selected []entities.FuelRecord) Summary {
	return Summary{
		Records:         len(selected),
		LastDieselLevel: LastKnownLevel(all, entities.FuelTypeDiesel),
		LastArlaLevel:   LastKnownLevel(all, entities.FuelTypeArla),
		DieselRefueled:  TotalRefueled(selected, entities.FuelTypeDiesel),
		ArlaRefueled:    TotalRefueled(selected, entities.FuelTypeArla),
		MeanConsumption: MeanConsumption(selected, AllVehicles),
	}
}

// LastKnownLevel returns the daily total of the most recent record that has
// one for the fuel type, or 0. Callers pass the unfiltered history.
func LastKnownLevel(all []entities.FuelRecord, t entities.FuelType) float64 {
	rec, ok := latest(all, func(r entities.FuelRecord) bool {
		return r.Fuel(t).Daily.IsSet()
	})
	if !ok {
		return 0
	}
	daily := rec.Fuel(t).Daily
	if v, isEnd := daily.End(); isEnd {
		return v
	}
	v, _ := daily.Start()
	return v
}

// TotalRefueled sums the fuel type's total refueled, absent counting as 0.
func TotalRefueled(records []entities.FuelRecord, t entities.FuelType) float64 {
	total := 0.0
	for _, r := range records {
		if v := r.Fuel(t).TotalRefueled; v != nil {
			total += *v
		}
	}
	return total
}

// MeanConsumption averages the stored km/l of the records of vehicleID
// (AllVehicles or "" for every record). An empty match yields 0.
func MeanConsumption(records []entities.FuelRecord, vehicleID string) float64 {
	sum, n := 0.0, 0
	for _, r := range records {
		if vehicleID != "" && vehicleID != AllVehicles && r.VehicleID != vehicleID {
			continue
		}
		if r.Average != nil {
			sum += *r.Average
		}
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

type VehicleStats struct {
	Vehicle         entities.Vehicle `json:"vehicle"`
	Records         int              `json:"records"`
	DieselRefueled  float64          `json:"diesel_refueled"`
	ArlaRefueled    float64          `json:"arla_refueled"`
	MeanConsumption float64          `json:"mean_consumption"`
	LastKm          *float64         `json:"last_km,omitempty"`
}

// VehicleBreakdown groups records per vehicle, in vehicles order. Vehicles
// without records are omitted.
func VehicleBreakdown(records []entities.FuelRecord, vehicles []entities.Vehicle) []VehicleStats {
	out := []VehicleStats{}
	for _, v := range vehicles {
		own := byVehicle(records, v.ID)
		if len(own) == 0 {
			continue
		}
		stats := VehicleStats{
			Vehicle:         v,
			Records:         len(own),
			DieselRefueled:  TotalRefueled(own, entities.FuelTypeDiesel),
			ArlaRefueled:    TotalRefueled(own, entities.FuelTypeArla),
			MeanConsumption: MeanConsumption(own, AllVehicles),
		}
		if km, ok := LastVehicleKm(own, v.ID, ""); ok {
			stats.LastKm = &km
		}
		out = append(out, stats)
	}
	return out
}

type ResponsibleStats struct {
	Responsible     entities.Responsible `json:"responsible"`
	Records         int                  `json:"records"`
	DieselRefueled  float64              `json:"diesel_refueled"`
	ArlaRefueled    float64              `json:"arla_refueled"`
	MeanConsumption float64              `json:"mean_consumption"`
	Plates          []string             `json:"plates"`
}

// ResponsibleBreakdown groups records per responsible, in responsibles order,
// with the distinct plates each one refueled. Responsibles without records are
// omitted; vehicles that no longer exist are left out of Plates.
func ResponsibleBreakdown(records []entities.FuelRecord, responsibles []entities.Responsible, vehicles []entities.Vehicle) []ResponsibleStats {
	plates := make(map[string]string, len(vehicles))
	for _, v := range vehicles {
		plates[v.ID] = v.Plate
	}

	out := []ResponsibleStats{}
	for _, resp := range responsibles {
		var own []entities.FuelRecord
		for _, r := range records {
			if r.ResponsibleID == resp.ID {
				own = append(own, r)
			}
		}
		if len(own) == 0 {
			continue
		}

		seen := map[string]struct{}{}
		touched := []string{}
		for _, r := range own {
			if _, dup := seen[r.VehicleID]; dup {
				continue
			}
			seen[r.VehicleID] = struct{}{}
			if p := plates[r.VehicleID]; p != "" {
				touched = append(touched, p)
			}
		}

		out = append(out, ResponsibleStats{
			Responsible:     resp,
			Records:         len(own),
			DieselRefueled:  TotalRefueled(own, entities.FuelTypeDiesel),
			ArlaRefueled:    TotalRefueled(own, entities.FuelTypeArla),
			MeanConsumption: MeanConsumption(own, AllVehicles),
			Plates:          touched,
		})
	}
	return out
}

type Comparison struct {
	FirstVehicleID  string  `json:"first_vehicle_id"`
	SecondVehicleID string  `json:"second_vehicle_id"`
	First           float64 `json:"first"`
	Second          float64 `json:"second"`
	Difference      float64 `json:"difference"`
}

// Compare computes the mean consumption of two vehicles over the same records.
// Difference is second minus first.
func Compare(records []entities.FuelRecord, first, second string) Comparison {
	a := MeanConsumption(records, first)
	b := MeanConsumption(records, second)
	return Comparison{
		FirstVehicleID:  first,
		SecondVehicleID: second,
		First:           a,
		Second:          b,
		Difference:      b - a,
	}
}

// SortByDateDesc returns a copy of records, most recent event first.
func SortByDateDesc(records []entities.FuelRecord) []entities.FuelRecord {
	out := append([]entities.FuelRecord(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Recent returns the n most recent records.
func Recent(records []entities.FuelRecord, n int) []entities.FuelRecord {
	sorted := SortByDateDesc(records)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func byVehicle(records []entities.FuelRecord, vehicleID string) []entities.FuelRecord {
	var out []entities.FuelRecord
	for _, r := range records {
		if r.VehicleID == vehicleID {
			out = append(out, r)
		}
	}
	return out
}

// Models lists the distinct vehicle models, sorted.
func Models(vehicles []entities.Vehicle) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, v := range vehicles {
		if _, dup := seen[v.Model]; dup {
			continue
		}
		seen[v.Model] = struct{}{}
		out = append(out, v.Model)
	}
	sort.Strings(out)
	return out
}
