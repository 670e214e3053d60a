package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "funilaria_autocolor/internal/adapter/http/dto/request"
	response "funilaria_autocolor/internal/adapter/http/dto/response"
	"funilaria_autocolor/internal/adapter/persistence/repository"
	"funilaria_autocolor/internal/domain/entities"
	"funilaria_autocolor/internal/usecase"
	"funilaria_autocolor/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler exposes the job lifecycle operations over HTTP. It only binds,
// translates and maps errors; every rule lives in the use case.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

// GetJob returns one job. An optional "stage" query narrows the photo list to
// that stage, keeping append order.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if raw := c.Query("stage"); raw != "" {
		stage := entities.PhotoStage(strings.ToLower(strings.TrimSpace(raw)))
		if !stage.IsValid() {
			appErr := mapJobError(usecase.ErrInvalidStage)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		job.Photos = job.PhotosByStage(stage)
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(
		c.Request.Context(),
		clientInputFromPayload(payload.Client),
		payload.Vehicle.ToVehicle(),
		payload.ServiceDescription,
	)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateJobDetails(
		c.Request.Context(),
		c.Param("id"),
		clientInputFromPayload(payload.Client),
		payload.Vehicle.ToVehicle(),
		payload.ServiceDescription,
	)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) SetStatus(c *gin.Context) {
	var payload request.SetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AddPhoto(c *gin.Context) {
	var payload request.AddPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AddPhoto(c.Request.Context(), c.Param("id"), usecase.AddPhotoInput{
		Stage:    payload.ResolveStage(),
		ImageRef: payload.URL,
		Comment:  payload.Comment,
		Describe: payload.Describe,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) EditPhoto(c *gin.Context) {
	var payload request.EditPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.EditPhoto(c.Request.Context(), c.Param("id"), c.Param("photo_id"), usecase.PhotoPatch{
		Comment:     payload.Comment,
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) DeletePhoto(c *gin.Context) {
	job, err := h.usecase.DeletePhoto(c.Request.Context(), c.Param("id"), c.Param("photo_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// Notify composes the client-facing status message for a job; narration
// failures degrade to the deterministic template inside the gateway.
func (h *JobHandler) Notify(c *gin.Context) {
	message, err := h.usecase.ComposeStatusUpdate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: message})
}

func clientInputFromPayload(p request.ClientPayload) usecase.ClientInput {
	return usecase.ClientInput{
		Name:     p.Name,
		Phone:    p.Phone,
		Email:    p.Email,
		CPF:      p.CPF,
		Password: p.Password,
	}
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCPF):
		return pkg.NewDomainErrorSimple("INVALID_CPF", "CPF Inválido. Verifique os dígitos.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("WEAK_PASSWORD", "A senha deve ter pelo menos 4 caracteres.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidStage),
		errors.Is(err, usecase.ErrMissingPhotoID),
		errors.Is(err, usecase.ErrMissingImage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, repository.ErrStorageCorrupt):
		return pkg.NewDomainError("STORAGE_CORRUPT", "Stored data is corrupt", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
