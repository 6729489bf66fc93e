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

// ResponsibleHandler handles the registration of refueling operators.

type ResponsibleHandler struct {
	usecase usecase.IResponsibleUseCase
}

func NewResponsibleHandler(uc usecase.IResponsibleUseCase) *ResponsibleHandler {
	return &ResponsibleHandler{usecase: uc}
}

func (h *ResponsibleHandler) CreateResponsible(c *gin.Context) {
	var payload request.ResponsibleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapResponsibleError(usecase.ErrInvalidResponsibleName)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Phone)
	if err != nil {
		log.Printf("[responsible][handler] create failed err=%v", err)
		appErr := mapResponsibleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromResponsible(created))
}

func (h *ResponsibleHandler) ListResponsibles(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[responsible][handler] list failed err=%v", err)
		appErr := mapResponsibleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResponsibles(list))
}

// DeleteResponsible removes the responsible only; fuel records that point at
// it are kept.
func (h *ResponsibleHandler) DeleteResponsible(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[responsible][handler] delete failed id=%s err=%v", id, err)
		appErr := mapResponsibleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapResponsibleError(err error) *pkg.AppError {
	if appErr, ok := storeError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidResponsibleName):
		return pkg.NewDomainErrorSimple("INVALID_RESPONSIBLE", "Por favor, preencha todos os campos obrigatórios.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidResponsibleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid responsible id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResponsibleNotFound):
		return pkg.NewDomainErrorSimple("RESPONSIBLE_NOT_FOUND", "Responsible not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
