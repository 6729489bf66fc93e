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

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapVehicleError(usecase.ErrInvalidVehicleInput)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Plate, payload.Model)
	if err != nil {
		log.Printf("[vehicle][handler] create failed plate=%s err=%v", payload.Plate, err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(created))
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[vehicle][handler] list failed err=%v", err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicles(list))
}

// ListModels returns the sorted distinct vehicle models used by the
// dashboard model filter.
func (h *VehicleHandler) ListModels(c *gin.Context) {
	models, err := h.usecase.Models(c.Request.Context())
	if err != nil {
		log.Printf("[vehicle][handler] models failed err=%v", err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if models == nil {
		models = []string{}
	}

	c.JSON(http.StatusOK, response.ModelsResponse{Models: models})
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[vehicle][handler] delete failed id=%s err=%v", id, err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapVehicleError(err error) *pkg.AppError {
	if appErr, ok := storeError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleInput):
		return pkg.NewDomainErrorSimple("INVALID_VEHICLE", "Por favor, preencha todos os campos obrigatórios.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidVehicleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid vehicle id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
