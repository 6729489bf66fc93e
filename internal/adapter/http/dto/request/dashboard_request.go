package request

import (
	"errors"
	"strings"
	"time"

	"controle_abastecimento/internal/usecase"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type DashboardQuery struct {
	Period    string `form:"period" example:"month"`
	StartDate string `form:"start_date" example:"2025-03-01"`
	EndDate   string `form:"end_date" example:"2025-03-31"`
	Model     string `form:"model"`
	Vehicle1  string `form:"vehicle1"`
	Vehicle2  string `form:"vehicle2"`
}

// ToQuery parses the calendar dates in loc. The custom range is only used
// when both dates are given.
func (q DashboardQuery) ToQuery(loc *time.Location) (usecase.DashboardQuery, error) {
	out := usecase.DashboardQuery{
		Period:   q.Period,
		Model:    q.Model,
		Vehicle1: q.Vehicle1,
		Vehicle2: q.Vehicle2,
	}
	var err error
	if out.StartDate, err = parseDate(q.StartDate, loc); err != nil {
		return usecase.DashboardQuery{}, err
	}
	if out.EndDate, err = parseDate(q.EndDate, loc); err != nil {
		return usecase.DashboardQuery{}, err
	}
	return out, nil
}

func parseDate(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
