// Package spreadsheet renders reports as xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"controle_abastecimento/internal/domain/consumption"
	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/domain/report"
	"controle_abastecimento/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary      = "Resumo"
	SheetDetails      = "Detalhes Completos"
	SheetVehicles     = "Análise por Veículo"
	SheetResponsibles = "Análise por Responsável"

	defaultSheet = "Sheet1"
	headerColor  = "#2563EB"
)

// DetailsHeader is the fixed column layout of the details sheet.
var DetailsHeader = []string{
	"Data", "Hora", "Responsável", "Telefone", "Veículo", "Placa", "Modelo",
	"Tipos Combustível",
	"DIESEL - Hodômetro Inicial", "DIESEL - Hodômetro Final",
	"DIESEL - Nível Inicial", "DIESEL - Nível Final",
	"DIESEL - Total Início Dia (L)", "DIESEL - Total Final Dia (L)",
	"DIESEL - Total Abastecido (L)",
	"ARLA - Hodômetro Inicial", "ARLA - Hodômetro Final",
	"ARLA - Nível Inicial", "ARLA - Nível Final",
	"ARLA - Total Início Dia (L)", "ARLA - Total Final Dia (L)",
	"ARLA - Total Abastecido (L)",
	"KM do Veículo", "Média Consumo (km/l)", "Observações",
}

type Renderer struct{}

// sheet is one worksheet's content; titleRows and headerRow are 1-based.
type sheet struct {
	name      string
	rows      [][]any
	titleRows []int
	headerRow int
}

var _ interfaces.IReportRenderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (*Renderer) Format() string    { return "xlsx" }
func (*Renderer) Extension() string { return "xlsx" }
func (*Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render writes the summary and details sheets, plus the per vehicle and per
// responsible sheets when they have rows.
func (*Renderer) Render(w io.Writer, doc report.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}

	sheets := []sheet{
		{name: SheetSummary, rows: summaryRows(doc), titleRows: []int{1, 4}},
		{name: SheetDetails, rows: detailRows(doc), headerRow: 1},
	}
	if len(doc.Vehicles) > 0 {
		sheets = append(sheets, sheet{name: SheetVehicles, rows: vehicleRows(doc.Vehicles), titleRows: []int{1}, headerRow: 3})
	}
	if len(doc.Responsibles) > 0 {
		sheets = append(sheets, sheet{name: SheetResponsibles, rows: responsibleRows(doc.Responsibles), titleRows: []int{1}, headerRow: 3})
	}

	for _, s := range sheets {
		if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeRows(f, s.name, s.rows); err != nil {
			return err
		}
		for _, row := range s.titleRows {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellStyle(s.name, cell, cell, titleStyle); err != nil {
				return err
			}
		}
		if s.headerRow > 0 && s.headerRow <= len(s.rows) {
			first, _ := excelize.CoordinatesToCellName(1, s.headerRow)
			last, _ := excelize.CoordinatesToCellName(len(s.rows[s.headerRow-1]), s.headerRow)
			if err := f.SetCellStyle(s.name, first, last, headerStyle); err != nil {
				return err
			}
			endCol, _ := excelize.ColumnNumberToName(len(s.rows[s.headerRow-1]))
			if err := f.SetColWidth(s.name, "A", endCol, 20); err != nil {
				return err
			}
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}
	if idx, err := f.GetSheetIndex(SheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}

	_, err = f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func summaryRows(doc report.Document) [][]any {
	s := doc.Summary
	return [][]any{
		{"RELATÓRIO DE ABASTECIMENTO", doc.Period.Label()},
		{"Gerado em", doc.Generated()},
		{""},
		{"RESUMO GERAL"},
		{"Total de Abastecimentos", s.Records},
		{"Último Nível DIESEL (L)", consumption.Round2(s.LastDieselLevel)},
		{"Último Nível ARLA (L)", consumption.Round2(s.LastArlaLevel)},
		{"Total DIESEL Abastecido (L)", consumption.Round2(s.DieselRefueled)},
		{"Total ARLA Abastecido (L)", consumption.Round2(s.ArlaRefueled)},
		{"Média de Consumo (km/l)", consumption.Round2(s.MeanConsumption)},
	}
}

func detailRows(doc report.Document) [][]any {
	rows := [][]any{toRow(DetailsHeader)}
	for _, row := range doc.Rows {
		rec := row.Record
		date := doc.LocalDate(rec)
		cells := []any{
			date.Format("02/01/2006"),
			date.Format("15:04"),
			row.ResponsibleName(),
			row.ResponsiblePhone(),
			row.Plate(),
			row.Plate(),
			row.Model(),
			joinTypes(rec.FuelTypes),
		}
		for _, t := range entities.FuelTypes {
			cells = append(cells, fuelCells(rec.Fuel(t))...)
		}
		cells = append(cells, optional(rec.VehicleKm), optional(rec.Average), rec.Observations)
		rows = append(rows, cells)
	}
	return rows
}

func fuelCells(d entities.FuelData) []any {
	levelStart, levelEnd := readingCells(d.Level)
	dailyStart, dailyEnd := readingCells(d.Daily)
	return []any{
		optional(d.OdometerStart),
		optional(d.OdometerEnd),
		levelStart, levelEnd,
		dailyStart, dailyEnd,
		optional(d.TotalRefueled),
	}
}

func readingCells(r entities.Reading) (start, end any) {
	start, end = "", ""
	if v, ok := r.Start(); ok {
		start = v
	}
	if v, ok := r.End(); ok {
		end = v
	}
	return start, end
}

func vehicleRows(stats []consumption.VehicleStats) [][]any {
	rows := [][]any{
		{"ANÁLISE POR VEÍCULO"},
		{""},
		{"Veículo", "Placa", "Modelo", "Total Abastecimentos", "DIESEL Total (L)", "ARLA Total (L)", "Média Consumo (km/l)", "Último KM"},
	}
	for _, s := range stats {
		var mean any = ""
		if s.MeanConsumption > 0 {
			mean = consumption.Round2(s.MeanConsumption)
		}
		rows = append(rows, []any{
			s.Vehicle.Plate,
			s.Vehicle.Plate,
			s.Vehicle.Model,
			s.Records,
			consumption.Round2(s.DieselRefueled),
			consumption.Round2(s.ArlaRefueled),
			mean,
			optional(s.LastKm),
		})
	}
	return rows
}

func responsibleRows(stats []consumption.ResponsibleStats) [][]any {
	rows := [][]any{
		{"ANÁLISE POR RESPONSÁVEL"},
		{""},
		{"Responsável", "Telefone", "Total Abastecimentos", "DIESEL Total (L)", "ARLA Total (L)", "Veículos Atendidos"},
	}
	for _, s := range stats {
		rows = append(rows, []any{
			s.Responsible.Name,
			s.Responsible.Phone,
			s.Records,
			consumption.Round2(s.DieselRefueled),
			consumption.Round2(s.ArlaRefueled),
			strings.Join(s.Plates, ", "),
		})
	}
	return rows
}

func optional(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func toRow(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func joinTypes(types []entities.FuelType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
