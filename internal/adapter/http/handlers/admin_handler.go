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

var errInvalidAdminPayload = pkg.NewDomainErrorSimple("INVALID_ADMIN_INPUT", "Invalid admin payload", http.StatusBadRequest)

// AdminHandler exposes the superadmin management of workshop logins.

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAdmins(admins))
}

func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var payload request.CreateAdminRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAdminPayload.HTTPStatus, errInvalidAdminPayload.ToHTTPError())
		return
	}

	admin, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Username, payload.Password)
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAdmin(admin))
}

func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAdminInput), errors.Is(err, usecase.ErrInvalidAdminID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, repository.ErrStorageCorrupt):
		return pkg.NewDomainError("STORAGE_CORRUPT", "Stored data is corrupt", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
