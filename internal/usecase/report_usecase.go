package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"controle_abastecimento/internal/domain/report"
	"controle_abastecimento/internal/usecase/interfaces"
)

var (
	ErrInvalidReportPeriod     = errors.New("invalid report period")
	ErrUnsupportedReportFormat = errors.New("unsupported report format")
)

// ReportFile is a rendered report ready to be served as an attachment.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

type IReportUseCase interface {
	Build(ctx context.Context, kind, key string) (report.Document, error)
	Export(ctx context.Context, kind, key, format string) (ReportFile, error)
	Formats() []string
}

type ReportUseCase struct {
	records      interfaces.IFuelRecordRepository
	responsibles interfaces.IResponsibleRepository
	vehicles     interfaces.IVehicleRepository
	renderers    map[string]interfaces.IReportRenderer
	formats      []string
	now          func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	records interfaces.IFuelRecordRepository,
	responsibles interfaces.IResponsibleRepository,
	vehicles interfaces.IVehicleRepository,
	loc *time.Location,
	renderers ...interfaces.IReportRenderer,
) *ReportUseCase {
	u := &ReportUseCase{
		records:      records,
		responsibles: responsibles,
		vehicles:     vehicles,
		renderers:    make(map[string]interfaces.IReportRenderer, len(renderers)),
		now:          func() time.Time { return time.Now().In(loc) },
	}
	for _, r := range renderers {
		u.renderers[r.Format()] = r
		u.formats = append(u.formats, r.Format())
	}
	return u
}

// Formats lists the export formats in registration order.
func (u *ReportUseCase) Formats() []string {
	return append([]string(nil), u.formats...)
}

func (u *ReportUseCase) Build(ctx context.Context, kind, key string) (report.Document, error) {
	now := u.now()
	period, err := report.ParsePeriod(strings.TrimSpace(kind), strings.TrimSpace(key), now)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: %v", ErrInvalidReportPeriod, err)
	}

	data, err := loadCollections(ctx, u.records, u.responsibles, u.vehicles)
	if err != nil {
		return report.Document{}, err
	}
	return report.Build(period, data.records, data.responsibles, data.vehicles, now), nil
}

func (u *ReportUseCase) Export(ctx context.Context, kind, key, format string) (ReportFile, error) {
	renderer, ok := u.renderers[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return ReportFile{}, ErrUnsupportedReportFormat
	}

	doc, err := u.Build(ctx, kind, key)
	if err != nil {
		return ReportFile{}, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, doc); err != nil {
		log.Printf("[report][usecase] render failed kind=%s key=%s format=%s err=%v", doc.Period.Kind, doc.Period.Key, renderer.Format(), err)
		return ReportFile{}, err
	}

	return ReportFile{
		Filename:    doc.Period.Filename(renderer.Extension()),
		ContentType: renderer.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
