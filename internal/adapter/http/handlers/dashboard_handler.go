package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "controle_abastecimento/internal/adapter/http/dto/request"
	response "controle_abastecimento/internal/adapter/http/dto/response"
	"controle_abastecimento/internal/usecase"
	"controle_abastecimento/pkg"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	loc     *time.Location
}

// NewDashboardHandler parses the custom range dates in loc.
func NewDashboardHandler(uc usecase.IDashboardUseCase, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{usecase: uc, loc: loc}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var q request.DashboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	query, err := q.ToQuery(h.loc)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.Get(c.Request.Context(), query)
	if err != nil {
		log.Printf("[dashboard][handler] get failed period=%s err=%v", q.Period, err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(d))
}

func mapDashboardError(err error) *pkg.AppError {
	if appErr, ok := storeError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_PERIOD", "Invalid period, expected today, month or last-90-days", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
