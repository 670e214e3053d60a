package request

import (
	"strings"

	"funilaria_autocolor/internal/domain/entities"
)

// ClientPayload carries client fields for intake and edit. CPF presence is
// enforced per-endpoint: required on create, optional on edit (an empty CPF
// skips validation downstream).
type ClientPayload struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required"`
	CPF      string `json:"cpf"`
	Password string `json:"password" binding:"required"`
}

type VehiclePayload struct {
	Plate string `json:"plate" binding:"required"`
	Model string `json:"model" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func (v VehiclePayload) ToVehicle() entities.Vehicle {
	return entities.Vehicle{
		Plate: strings.TrimSpace(v.Plate),
		Model: strings.TrimSpace(v.Model),
		Color: strings.TrimSpace(v.Color),
	}
}

// CreateJobRequest is the intake payload: new client, vehicle and service
// description in one shot.
type CreateJobRequest struct {
	Client             ClientPayload  `json:"client" binding:"required"`
	Vehicle            VehiclePayload `json:"vehicle" binding:"required"`
	ServiceDescription string         `json:"serviceDescription" binding:"required"`
}

// UpdateJobRequest edits the embedded client/vehicle snapshot and the service
// description of an existing job.
type UpdateJobRequest struct {
	Client             ClientPayload  `json:"client" binding:"required"`
	Vehicle            VehiclePayload `json:"vehicle" binding:"required"`
	ServiceDescription string         `json:"serviceDescription" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ResolveStatus trims the payload value; validity is the use case's call.
func (r SetStatusRequest) ResolveStatus() entities.JobStatus {
	return entities.JobStatus(strings.TrimSpace(r.Status))
}

// AddPhotoRequest appends one stage-tagged photo. Describe asks the AI
// collaborator for a damage description stored alongside the photo.
type AddPhotoRequest struct {
	Stage    string  `json:"stage" binding:"required"`
	URL      string  `json:"url" binding:"required"`
	Comment  *string `json:"comment"`
	Describe bool    `json:"describe"`
}

func (r AddPhotoRequest) ResolveStage() entities.PhotoStage {
	return entities.PhotoStage(strings.ToLower(strings.TrimSpace(r.Stage)))
}

// EditPhotoRequest patches the two human-editable photo fields. Absent fields
// stay untouched; explicit empty strings clear them.
type EditPhotoRequest struct {
	Comment     *string `json:"comment"`
	Description *string `json:"description"`
}
