// Package text renders reports as plain UTF-8 text.
package text

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"controle_abastecimento/internal/domain/entities"
	"controle_abastecimento/internal/domain/report"
	"controle_abastecimento/internal/usecase/interfaces"
)

const notAvailable = "N/A"

type Renderer struct{}

var _ interfaces.IReportRenderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (*Renderer) Format() string      { return "txt" }
func (*Renderer) Extension() string   { return "txt" }
func (*Renderer) ContentType() string { return "text/plain; charset=utf-8" }

func (*Renderer) Render(w io.Writer, doc report.Document) error {
	b := bufio.NewWriter(w)

	fmt.Fprintln(b, doc.Title())
	fmt.Fprintf(b, "Gerado em: %s\n", doc.Generated())
	fmt.Fprintf(b, "%s\n\n", strings.Repeat("=", 60))

	if len(doc.Rows) == 0 {
		fmt.Fprintln(b, "Nenhum abastecimento encontrado para o período selecionado.")
		return b.Flush()
	}

	s := doc.Summary
	fmt.Fprintln(b, "RESUMO GERAL:")
	fmt.Fprintf(b, "Total de Abastecimentos: %d\n", s.Records)
	fmt.Fprintf(b, "Último Nível DIESEL: %s L\n", report.Fixed(s.LastDieselLevel))
	fmt.Fprintf(b, "Último Nível ARLA: %s L\n", report.Fixed(s.LastArlaLevel))
	fmt.Fprintf(b, "Total DIESEL Abastecido: %s L\n", report.Fixed(s.DieselRefueled))
	fmt.Fprintf(b, "Total ARLA Abastecido: %s L\n", report.Fixed(s.ArlaRefueled))
	fmt.Fprintf(b, "Média de Consumo: %s km/l\n\n", report.Fixed(s.MeanConsumption))

	fmt.Fprintln(b, "DETALHAMENTO DOS ABASTECIMENTOS:")
	fmt.Fprintln(b, strings.Repeat("-", 60))

	for i, row := range doc.Rows {
		rec := row.Record
		fmt.Fprintf(b, "%d. Data: %s\n", i+1, report.Timestamp(doc.LocalDate(rec)))
		fmt.Fprintf(b, "   Responsável: %s\n", orNA(row.ResponsibleName()))
		if phone := row.ResponsiblePhone(); phone != "" {
			fmt.Fprintf(b, "   Telefone: %s\n", phone)
		}
		fmt.Fprintf(b, "   Veículo: %s\n", vehicleLabel(row))
		fmt.Fprintf(b, "   Tipos: %s\n", joinTypes(rec.FuelTypes))

		for _, t := range entities.FuelTypes {
			if rec.Has(t) {
				writeFuel(b, t, rec.Fuel(t))
			}
		}

		if v := rec.VehicleKm; v != nil && *v != 0 {
			fmt.Fprintf(b, "   KM do Veículo: %s\n", report.Number(*v))
		}
		if v := rec.Average; v != nil && *v != 0 {
			fmt.Fprintf(b, "   Média: %s km/l\n", report.Number(*v))
		}
		if rec.Observations != "" {
			fmt.Fprintf(b, "   Observações: %s\n", rec.Observations)
		}
		fmt.Fprintln(b)
	}
	return b.Flush()
}

func writeFuel(b *bufio.Writer, t entities.FuelType, d entities.FuelData) {
	fmt.Fprintf(b, "   %s:\n", t)
	line := func(label string, v float64, unit string) {
		if v == 0 {
			return
		}
		fmt.Fprintf(b, "     %s: %s%s\n", label, report.Number(v), unit)
	}
	if d.OdometerStart != nil {
		line("Hodômetro Inicial", *d.OdometerStart, "")
	}
	if d.OdometerEnd != nil {
		line("Hodômetro Final", *d.OdometerEnd, "")
	}
	if v, ok := d.Level.Start(); ok {
		line("Nível Inicial", v, "")
	}
	if v, ok := d.Level.End(); ok {
		line("Nível Final", v, "")
	}
	if v, ok := d.Daily.Start(); ok {
		line("Total Início do Dia", v, " L")
	}
	if v, ok := d.Daily.End(); ok {
		line("Total Final do Dia", v, " L")
	}
	if d.TotalRefueled != nil {
		line("Total Abastecido", *d.TotalRefueled, " L")
	}
}

func vehicleLabel(row report.Row) string {
	if row.Vehicle == nil {
		return notAvailable
	}
	return row.Vehicle.Label()
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func joinTypes(types []entities.FuelType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
