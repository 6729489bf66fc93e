package handlers

import (
	"errors"
	"log"
	"net/http"

	request "controle_abastecimento/internal/adapter/http/dto/request"
	response "controle_abastecimento/internal/adapter/http/dto/response"
	"controle_abastecimento/internal/usecase"
	"controle_abastecimento/pkg"

	"github.com/gin-gonic/gin"
)

// FuelRecordHandler handles the refueling log.
//
// Create and Update answer validation failures with the same messages the
// refueling form shows, so clients can display them verbatim.

type FuelRecordHandler struct {
	usecase usecase.IFuelRecordUseCase
}

func NewFuelRecordHandler(uc usecase.IFuelRecordUseCase) *FuelRecordHandler {
	return &FuelRecordHandler{usecase: uc}
}

func (h *FuelRecordHandler) CreateFuelRecord(c *gin.Context) {
	in, ok := bindFuelRecord(c)
	if !ok {
		return
	}
	log.Printf("[fuel][handler] create start vehicle_id=%s types=%v", in.VehicleID, in.FuelTypes)

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("[fuel][handler] create failed vehicle_id=%s err=%v", in.VehicleID, err)
		appErr := mapFuelRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[fuel][handler] create success id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromFuelRecord(created))
}

func (h *FuelRecordHandler) ListFuelRecords(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[fuel][handler] list failed err=%v", err)
		appErr := mapFuelRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFuelRecords(list))
}

func (h *FuelRecordHandler) GetFuelRecord(c *gin.Context) {
	id := c.Param("id")
	detail, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		log.Printf("[fuel][handler] get failed id=%s err=%v", id, err)
		appErr := mapFuelRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFuelRecordDetail(detail))
}

func (h *FuelRecordHandler) UpdateFuelRecord(c *gin.Context) {
	id := c.Param("id")
	in, ok := bindFuelRecord(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, in)
	if err != nil {
		log.Printf("[fuel][handler] update failed id=%s err=%v", id, err)
		appErr := mapFuelRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[fuel][handler] update success id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromFuelRecord(updated))
}

func (h *FuelRecordHandler) DeleteFuelRecord(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[fuel][handler] delete failed id=%s err=%v", id, err)
		appErr := mapFuelRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// OdometerSuggestions returns the odometer start values a new record form
// is pre-filled with.
func (h *FuelRecordHandler) OdometerSuggestions(c *gin.Context) {
	s, err := h.usecase.OdometerSuggestions(c.Request.Context())
	if err != nil {
		log.Printf("[fuel][handler] odometer-suggestions failed err=%v", err)
		appErr := mapFuelRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOdometerSuggestions(s))
}

func (h *FuelRecordHandler) AveragePreview(c *gin.Context) {
	var q request.AverageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	avg, err := h.usecase.PreviewAverage(c.Request.Context(), q.ToInput())
	if err != nil {
		log.Printf("[fuel][handler] average-preview failed vehicle_id=%s err=%v", q.VehicleID, err)
		appErr := mapFuelRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AverageResponse{Average: avg})
}

func bindFuelRecord(c *gin.Context) (usecase.FuelRecordInput, bool) {
	var payload request.FuelRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return usecase.FuelRecordInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return usecase.FuelRecordInput{}, false
	}
	return in, true
}

func mapFuelRecordError(err error) *pkg.AppError {
	if appErr, ok := storeError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Por favor, preencha todos os campos obrigatórios.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFuelType):
		return pkg.NewDomainErrorSimple("INVALID_FUEL_TYPE", "Tipo de combustível inválido.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDieselOdometerRequired):
		return pkg.NewDomainErrorSimple("DIESEL_ODOMETER_REQUIRED", "Hodômetro inicial e final são obrigatórios para DIESEL.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDieselTotalRequired):
		return pkg.NewDomainErrorSimple("DIESEL_TOTAL_REQUIRED", "Total Abastecido é obrigatório para DIESEL.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrArlaOdometerRequired):
		return pkg.NewDomainErrorSimple("ARLA_ODOMETER_REQUIRED", "Hodômetro inicial e final são obrigatórios para ARLA.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrArlaTotalRequired):
		return pkg.NewDomainErrorSimple("ARLA_TOTAL_REQUIRED", "Total Abastecido é obrigatório para ARLA.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFuelRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid fuel record id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFuelRecordNotFound):
		return pkg.NewDomainErrorSimple("FUEL_RECORD_NOT_FOUND", "Fuel record not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
