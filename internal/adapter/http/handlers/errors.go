package handlers

import (
	"errors"
	"net/http"

	"controle_abastecimento/internal/usecase"
	"controle_abastecimento/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida.", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

// storeError maps a failure to load from the record store. Clients show a
// blocking error with a reload option.
func storeError(err error) (*pkg.AppError, bool) {
	if errors.Is(err, usecase.ErrStoreUnavailable) {
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Não foi possível carregar os dados. Recarregue a página.", err, http.StatusServiceUnavailable), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}
