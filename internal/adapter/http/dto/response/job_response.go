package response

import (
	"time"

	"funilaria_autocolor/internal/domain/entities"
)

type PhotoResponse struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Stage       string    `json:"stage"`
	Timestamp   time.Time `json:"timestamp"`
	Description *string   `json:"description,omitempty"`
	Comment     *string   `json:"comment,omitempty"`
}

type ClientResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type VehicleResponse struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
	Color string `json:"color"`
}

// JobResponse is the wire shape of a job. The embedded client omits the
// stored password; everything else mirrors the persisted document.
type JobResponse struct {
	ID                 string          `json:"id"`
	Client             ClientResponse  `json:"client"`
	Vehicle            VehicleResponse `json:"vehicle"`
	ServiceDescription string          `json:"serviceDescription"`
	Status             string          `json:"status"`
	Photos             []PhotoResponse `json:"photos"`
	CreatedAt          time.Time       `json:"createdAt"`
	Notes              *string         `json:"notes,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	photos := make([]PhotoResponse, 0, len(j.Photos))
	for _, p := range j.Photos {
		photos = append(photos, PhotoResponse{
			ID:          p.ID,
			URL:         p.URL,
			Stage:       string(p.Stage),
			Timestamp:   p.Timestamp,
			Description: p.Description,
			Comment:     p.Comment,
		})
	}
	return JobResponse{
		ID: j.ID,
		Client: ClientResponse{
			ID:    j.Client.ID,
			Name:  j.Client.Name,
			Phone: j.Client.Phone,
			Email: j.Client.Email,
			CPF:   j.Client.CPF,
		},
		Vehicle: VehicleResponse{
			Plate: j.Vehicle.Plate,
			Model: j.Vehicle.Model,
			Color: j.Vehicle.Color,
		},
		ServiceDescription: j.ServiceDescription,
		Status:             string(j.Status),
		Photos:             photos,
		CreatedAt:          j.CreatedAt,
		Notes:              j.Notes,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

// MessageResponse wraps a composed notification text.
type MessageResponse struct {
	Message string `json:"message"`
}
