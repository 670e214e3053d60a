package handlers

import (
	"errors"
	"net/http"

	request "funilaria_autocolor/internal/adapter/http/dto/request"
	response "funilaria_autocolor/internal/adapter/http/dto/response"
	"funilaria_autocolor/internal/adapter/persistence/repository"
	"funilaria_autocolor/internal/usecase"
	"funilaria_autocolor/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler resolves logins to session descriptors. The error messages stay
// deliberately vague about which half of a credential pair was wrong.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Authenticate(c.Request.Context(), payload.ResolveRole(), payload.Identifier, payload.Secret)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLoginResult(result))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAdminCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Credenciais de oficina inválidas", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidClientCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Credenciais de cliente inválidas", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNoJobsForClient):
		return pkg.NewDomainErrorSimple("NO_JOBS_FOR_CLIENT", "Nenhum serviço encontrado para este cliente.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Credenciais inválidas", http.StatusBadRequest)
	case errors.Is(err, repository.ErrStorageCorrupt):
		return pkg.NewDomainError("STORAGE_CORRUPT", "Stored data is corrupt", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
