package entities

import "time"

type FuelType string

const (
	FuelTypeDiesel FuelType = "DIESEL"
	FuelTypeArla   FuelType = "ARLA"
)

// FuelTypes lists every supported fuel type in display order.
var FuelTypes = []FuelType{FuelTypeDiesel, FuelTypeArla}

func (t FuelType) Valid() bool {
	return t == FuelTypeDiesel || t == FuelTypeArla
}

// ReadingKind tells which side of a start/end pair a Reading carries.
type ReadingKind string

const (
	ReadingNone  ReadingKind = ""
	ReadingStart ReadingKind = "start"
	ReadingEnd   ReadingKind = "end"
)

// Reading is a tank level or a daily total, taken either at the start or at
// the end of the refueling. A record holds at most one side per pair.
type Reading struct {
	Kind  ReadingKind `json:"kind,omitempty"`
	Value float64     `json:"value,omitempty"`
}

func StartReading(v float64) Reading { return Reading{Kind: ReadingStart, Value: v} }

func EndReading(v float64) Reading { return Reading{Kind: ReadingEnd, Value: v} }

func (r Reading) IsSet() bool {
	return r.Kind == ReadingStart || r.Kind == ReadingEnd
}

// Start returns the value when the reading was taken at the start.
func (r Reading) Start() (float64, bool) {
	return r.Value, r.Kind == ReadingStart
}

// End returns the value when the reading was taken at the end.
func (r Reading) End() (float64, bool) {
	return r.Value, r.Kind == ReadingEnd
}

// FuelData holds the per fuel type fields of a FuelRecord.
type FuelData struct {
	OdometerStart *float64 `json:"odometer_start,omitempty"`
	OdometerEnd   *float64 `json:"odometer_end,omitempty"`
	Level         Reading  `json:"level"`
	Daily         Reading  `json:"daily"`
	TotalRefueled *float64 `json:"total_refueled,omitempty"`
}

// IsZero reports whether no field is populated.
func (d FuelData) IsZero() bool {
	return d.OdometerStart == nil && d.OdometerEnd == nil && !d.Level.IsSet() && !d.Daily.IsSet() && d.TotalRefueled == nil
}

// FuelRecord is a single refueling event.
//
// Invariants (enforced by the use case, not by the store):
//   - FuelTypes is non-empty and only holds DIESEL / ARLA
//   - a selected type carries both odometers and its total refueled
//   - Average is derived once at entry time and stored verbatim
//
// Date is the event timestamp; CreatedAt is assigned by the store.
// ResponsibleID and VehicleID are weak references.

type FuelRecord struct {
	ID            string     `json:"id"`
	Date          time.Time  `json:"date"`
	ResponsibleID string     `json:"responsible_id"`
	VehicleID     string     `json:"vehicle_id"`
	FuelTypes     []FuelType `json:"fuel_types"`
	Diesel        FuelData   `json:"diesel"`
	Arla          FuelData   `json:"arla"`
	VehicleKm     *float64   `json:"vehicle_km,omitempty"`
	Average       *float64   `json:"average,omitempty"`
	Observations  string     `json:"observations,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (r FuelRecord) Has(t FuelType) bool {
	for _, ft := range r.FuelTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// Fuel returns the fields of the given fuel type.
func (r FuelRecord) Fuel(t FuelType) FuelData {
	if t == FuelTypeArla {
		return r.Arla
	}
	return r.Diesel
}

// HasPositiveAverage reports whether the record takes part in consumption analysis.
func (r FuelRecord) HasPositiveAverage() bool {
	return r.Average != nil && *r.Average > 0
}
