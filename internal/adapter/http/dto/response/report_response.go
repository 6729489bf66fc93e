package response

import (
	"time"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/report"
)

type ReportResponse struct {
	Kind         string                         `json:"kind"`
	Key          string                         `json:"key"`
	Label        string                         `json:"label"`
	Title        string                         `json:"title"`
	Start        time.Time                      `json:"start"`
	End          time.Time                      `json:"end"`
	GeneratedAt  time.Time                      `json:"generated_at"`
	Summary      consumption.Summary            `json:"summary"`
	Records      []FuelRecordDetailResponse     `json:"records"`
	Vehicles     []consumption.VehicleStats     `json:"vehicles"`
	Responsibles []consumption.ResponsibleStats `json:"responsibles"`
	Formats      []string                       `json:"formats"`
}

func FromReport(doc report.Document, formats []string) ReportResponse {
	rows := make([]FuelRecordDetailResponse, 0, len(doc.Rows))
	for _, row := range doc.Rows {
		rows = append(rows, FuelRecordDetailResponse{
			FuelRecordResponse: FromFuelRecord(row.Record),
			Responsible:        fromResponsiblePtr(row.Responsible),
			Vehicle:            fromVehiclePtr(row.Vehicle),
		})
	}
	vehicles := doc.Vehicles
	if vehicles == nil {
		vehicles = []consumption.VehicleStats{}
	}
	responsibles := doc.Responsibles
	if responsibles == nil {
		responsibles = []consumption.ResponsibleStats{}
	}
	return ReportResponse{
		Kind:         string(doc.Period.Kind),
		Key:          doc.Period.Key,
		Label:        doc.Period.Label(),
		Title:        doc.Title(),
		Start:        doc.Period.Start,
		End:          doc.Period.End,
		GeneratedAt:  doc.GeneratedAt,
		Summary:      doc.Summary,
		Records:      rows,
		Vehicles:     vehicles,
		Responsibles: responsibles,
		Formats:      formats,
	}
}
