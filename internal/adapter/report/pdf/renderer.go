// Package pdf renders reports as landscape A4 PDF documents.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/domain/report"
	"controle_abastecimento/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 7.0
	rowHeight  = 6.0
	empty      = "-"
)

type column struct {
	title string
	width float64
}

// columns span the 277mm printable width of a landscape A4 page.
var columns = []column{
	{"Data/Hora", 28},
	{"Responsável", 30},
	{"Veículo", 34},
	{"Tipos", 22},
	{"DIESEL Diário", 28},
	{"ARLA Diário", 28},
	{"Abastecido", 30},
	{"KM", 18},
	{"Média", 20},
	{"Observações", 39},
}

type Renderer struct{}

var _ interfaces.IReportRenderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (*Renderer) Format() string      { return "pdf" }
func (*Renderer) Extension() string   { return "pdf" }
func (*Renderer) ContentType() string { return "application/pdf" }

func (*Renderer) Render(w io.Writer, doc report.Document) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Cell(0, 10, tr(doc.Title()))
	pdf.Ln(10)

	pdf.SetFont(fontFamily, "", 10)
	pdf.Cell(0, lineHeight, tr("Gerado em: "+doc.Generated()))
	pdf.Ln(lineHeight * 2)

	s := doc.Summary
	for _, line := range []string{
		fmt.Sprintf("Total de Abastecimentos: %d", s.Records),
		fmt.Sprintf("Último Nível DIESEL: %s L", report.Fixed(s.LastDieselLevel)),
		fmt.Sprintf("Último Nível ARLA: %s L", report.Fixed(s.LastArlaLevel)),
		fmt.Sprintf("Total DIESEL Abastecido: %s L", report.Fixed(s.DieselRefueled)),
		fmt.Sprintf("Total ARLA Abastecido: %s L", report.Fixed(s.ArlaRefueled)),
		fmt.Sprintf("Média de Consumo: %s km/l", report.Fixed(s.MeanConsumption)),
	} {
		pdf.Cell(0, lineHeight, tr(line))
		pdf.Ln(lineHeight)
	}

	if len(doc.Rows) > 0 {
		pdf.Ln(lineHeight)
		writeTable(pdf, tr, doc)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func writeTable(pdf *fpdf.Fpdf, tr func(string) string, doc report.Document) {
	header := func() {
		pdf.SetFont(fontFamily, "B", 8)
		pdf.SetFillColor(37, 99, 235)
		pdf.SetTextColor(255, 255, 255)
		for _, c := range columns {
			pdf.CellFormat(c.width, rowHeight, tr(c.title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(fontFamily, "", 8)
		pdf.SetTextColor(0, 0, 0)
	}

	header()
	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottom := pdf.GetMargins()
	for _, row := range doc.Rows {
		if pdf.GetY()+rowHeight > pageHeight-bottom {
			pdf.AddPage()
			header()
		}
		for i, cell := range tableRow(doc, row) {
			text := fit(pdf, tr(cell), columns[i].width-2)
			pdf.CellFormat(columns[i].width, rowHeight, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func tableRow(doc report.Document, row report.Row) []string {
	rec := row.Record
	date := doc.LocalDate(rec)

	name := row.ResponsibleName()
	if name == "" {
		name = "N/A"
	}
	vehicle := "N/A"
	if row.Vehicle != nil {
		vehicle = row.Vehicle.Label()
	}

	types := make([]string, 0, len(rec.FuelTypes))
	for _, t := range rec.FuelTypes {
		types = append(types, string(t))
	}

	km := empty
	if rec.VehicleKm != nil && *rec.VehicleKm != 0 {
		km = report.Number(*rec.VehicleKm)
	}
	avg := empty
	if rec.Average != nil && *rec.Average != 0 {
		avg = report.Number(*rec.Average) + " km/l"
	}
	obs := rec.Observations
	if obs == "" {
		obs = empty
	}

	return []string{
		date.Format("02/01/2006 15:04"),
		name,
		vehicle,
		strings.Join(types, ", "),
		daily(rec.Diesel.Daily),
		daily(rec.Arla.Daily),
		fmt.Sprintf("D:%sL A:%sL", value(rec.Diesel.TotalRefueled), value(rec.Arla.TotalRefueled)),
		km,
		avg,
		obs,
	}
}

// daily renders a daily total reading as "startL -> endL", the missing side
// printed as zero.
func daily(r entities.Reading) string {
	if !r.IsSet() || r.Value == 0 {
		return empty
	}
	var start, end float64
	if v, ok := r.Start(); ok {
		start = v
	}
	if v, ok := r.End(); ok {
		end = v
	}
	return fmt.Sprintf("%sL -> %sL", report.Number(start), report.Number(end))
}

func value(v *float64) string {
	if v == nil {
		return "0"
	}
	return report.Number(*v)
}

// fit truncates s so it fits in width at the current font.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
