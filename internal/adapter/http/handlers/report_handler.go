package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	response "controle_abastecimento/internal/adapter/http/dto/response"
	"controle_abastecimento/internal/usecase"
	"controle_abastecimento/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the daily and monthly reports, as JSON or as a
// downloadable file.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	kind, key := c.Param("kind"), c.Query("key")

	doc, err := h.usecase.Build(c.Request.Context(), kind, key)
	if err != nil {
		log.Printf("[report][handler] build failed kind=%s key=%s err=%v", kind, key, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReport(doc, h.usecase.Formats()))
}

func (h *ReportHandler) ExportReport(c *gin.Context) {
	kind, key := c.Param("kind"), c.Query("key")
	format := c.DefaultQuery("format", "txt")

	file, err := h.usecase.Export(c.Request.Context(), kind, key, format)
	if err != nil {
		log.Printf("[report][handler] export failed kind=%s key=%s format=%s err=%v", kind, key, format, err)
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] export success file=%s bytes=%d", file.Filename, len(file.Content))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func mapReportError(err error) *pkg.AppError {
	if appErr, ok := storeError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidReportPeriod):
		return pkg.NewDomainError("INVALID_REPORT_PERIOD", "Invalid report period, expected daily (YYYY-MM-DD) or monthly (YYYY-MM)", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedReportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported report format", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
