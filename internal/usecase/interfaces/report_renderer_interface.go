package interfaces

import (
	"io"

	"controle_abastecimento/internal/domain/report"
)

// IReportRenderer writes a report document in one export format.
type IReportRenderer interface {
	Format() string
	Extension() string
	ContentType() string
	Render(w io.Writer, doc report.Document) error
}
