package report

import (
	"strconv"
	"time"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/entities"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Row is a record with its weak references resolved. Responsible or Vehicle
// is nil when the referenced entity was deleted.
type Row struct {
	Record      entities.FuelRecord
	Responsible *entities.Responsible
	Vehicle     *entities.Vehicle
}

func (r Row) ResponsibleName() string {
	if r.Responsible == nil {
		return ""
	}
	return r.Responsible.Name
}

func (r Row) ResponsiblePhone() string {
	if r.Responsible == nil {
		return ""
	}
	return r.Responsible.Phone
}

func (r Row) Plate() string {
	if r.Vehicle == nil {
		return ""
	}
	return r.Vehicle.Plate
}

func (r Row) Model() string {
	if r.Vehicle == nil {
		return ""
	}
	return r.Vehicle.Model
}

// Document is everything a renderer needs for one report.
type Document struct {
	Period       Period
	GeneratedAt  time.Time
	Summary      consumption.Summary
	Rows         []Row
	Vehicles     []consumption.VehicleStats
	Responsibles []consumption.ResponsibleStats
}

// Build selects the period's records out of all and aggregates them. The
// summary's last known levels are taken from all.
func Build(p Period, all []entities.FuelRecord, responsibles []entities.Responsible, vehicles []entities.Vehicle, generatedAt time.Time) Document {
	selected := p.Select(all)

	respByID := make(map[string]entities.Responsible, len(responsibles))
	for _, r := range responsibles {
		respByID[r.ID] = r
	}
	vehByID := make(map[string]entities.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehByID[v.ID] = v
	}

	rows := make([]Row, 0, len(selected))
	for _, rec := range selected {
		row := Row{Record: rec}
		if resp, ok := respByID[rec.ResponsibleID]; ok {
			row.Responsible = &resp
		}
		if veh, ok := vehByID[rec.VehicleID]; ok {
			row.Vehicle = &veh
		}
		rows = append(rows, row)
	}

	return Document{
		Period:       p,
		GeneratedAt:  generatedAt.In(p.Location()),
		Summary:      consumption.Summarize(all, selected),
		Rows:         rows,
		Vehicles:     consumption.VehicleBreakdown(selected, vehicles),
		Responsibles: consumption.ResponsibleBreakdown(selected, responsibles, vehicles),
	}
}

// Title is the uppercase report heading.
func (d Document) Title() string {
	return "RELATÓRIO DE ABASTECIMENTO - " + cases.Upper(language.BrazilianPortuguese).String(d.Period.Label())
}

// Generated renders the generation timestamp as "14/03/2025 às 15:30".
func (d Document) Generated() string {
	return Timestamp(d.GeneratedAt)
}

// LocalDate returns the record date in the report location.
func (d Document) LocalDate(r entities.FuelRecord) time.Time {
	return r.Date.In(d.Period.Location())
}

// Timestamp formats t as "dd/mm/yyyy às hh:mm".
func Timestamp(t time.Time) string {
	return t.Format("02/01/2006") + " às " + t.Format("15:04")
}

// Number prints v with the fewest digits that represent it.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Fixed prints v with two decimals.
func Fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
