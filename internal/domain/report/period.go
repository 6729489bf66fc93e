// Package report assembles the daily and monthly refueling reports handed
// to the text, spreadsheet and PDF renderers.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"controle_abastecimento/internal/domain/entities"
)

var (
	ErrInvalidKind = errors.New("invalid report kind")
	ErrInvalidKey  = errors.New("invalid report period key")
)

type Kind string

const (
	KindDaily   Kind = "daily"
	KindMonthly Kind = "monthly"
)

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Period is one calendar day or month in a fixed location.
type Period struct {
	Kind  Kind
	Key   string
	Start time.Time
	End   time.Time
}

// ParsePeriod resolves kind and key ("2025-03-14" or "2025-03") in now's
// location. An empty key means today or the current month.
func ParsePeriod(kind, key string, now time.Time) (Period, error) {
	loc := now.Location()
	switch Kind(kind) {
	case KindDaily:
		if key == "" {
			key = now.Format(dayKeyLayout)
		}
		d, err := time.ParseInLocation(dayKeyLayout, key, loc)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		return Period{Kind: KindDaily, Key: key, Start: d, End: d.AddDate(0, 0, 1)}, nil
	case KindMonthly:
		if key == "" {
			key = now.Format(monthKeyLayout)
		}
		m, err := time.ParseInLocation(monthKeyLayout, key, loc)
		if err != nil {
			return Period{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
		return Period{Kind: KindMonthly, Key: key, Start: m, End: m.AddDate(0, 1, 0)}, nil
	default:
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}

func (p Period) Location() *time.Location {
	return p.Start.Location()
}

// Contains is half-open: [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Select keeps the records of the period in their original order.
func (p Period) Select(records []entities.FuelRecord) []entities.FuelRecord {
	out := []entities.FuelRecord{}
	for _, r := range records {
		if p.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}

// Label is "14/03/2025" for a day and "março de 2025" for a month.
func (p Period) Label() string {
	if p.Kind == KindMonthly {
		return monthNames[p.Start.Month()-1] + " de " + strconv.Itoa(p.Start.Year())
	}
	return p.Start.Format("02/01/2006")
}

// Filename is relatorio-abastecimento-<kind>-<key>.<ext>.
func (p Period) Filename(ext string) string {
	return fmt.Sprintf("relatorio-abastecimento-%s-%s.%s", p.Kind, p.Key, ext)
}
