package entities

import "time"

// JobStatus represents the lifecycle of a repair job (serviço de funilaria).
//
// Domain notes:
//   - The funnel follows the shop floor: recebido -> preparação -> pintura ->
//     finalização -> concluído.
//   - The order is a convention, not a constraint: operators may set any status
//     from any status (e.g. to correct a mistake). Only unknown values are
//     rejected at the boundary.
//   - Values are the Portuguese display strings and double as the persisted
//     wire values.

type JobStatus string

const (
	JobStatusRecebido    JobStatus = "Recebido"
	JobStatusPreparacao  JobStatus = "Preparação"
	JobStatusPintura     JobStatus = "Pintura"
	JobStatusFinalizacao JobStatus = "Finalização"
	JobStatusConcluido   JobStatus = "Concluído"
)

// AllJobStatuses lists the five statuses in funnel order.
func AllJobStatuses() []JobStatus {
	return []JobStatus{
		JobStatusRecebido,
		JobStatusPreparacao,
		JobStatusPintura,
		JobStatusFinalizacao,
		JobStatusConcluido,
	}
}

func (s JobStatus) IsValid() bool {
	for _, known := range AllJobStatuses() {
		if s == known {
			return true
		}
	}
	return false
}

// Vehicle is a value type embedded in Job. It has no identity of its own.
type Vehicle struct {
	Plate string `json:"plate"`
	Model string `json:"model"`
	Color string `json:"color"`
}

// Job is one vehicle repair engagement tracked through the status funnel.
//
// Storage model:
//   - Jobs live inside the "jobs" document as an ordered sequence; the whole
//     document is rewritten on every save.
//
// Ownership notes:
//   - Client and Vehicle are denormalized snapshots taken at save time, not
//     references. The embedded client may drift from the clients collection
//     after independent edits; callers relate the two through Client.ID.
//   - Photos keep append order; "latest photo" means the last element.
type Job struct {
	ID                 string    `json:"id"`
	Client             Client    `json:"client"`
	Vehicle            Vehicle   `json:"vehicle"`
	ServiceDescription string    `json:"serviceDescription"`
	Status             JobStatus `json:"status"`
	Photos             []Photo   `json:"photos"`
	CreatedAt          time.Time `json:"createdAt"`
	Notes              *string   `json:"notes,omitempty"`
}

// LatestPhoto returns the most recently appended photo, or nil when the job
// has none.
func (j Job) LatestPhoto() *Photo {
	if len(j.Photos) == 0 {
		return nil
	}
	return &j.Photos[len(j.Photos)-1]
}

// PhotosByStage filters the photo sequence by stage preserving append order.
func (j Job) PhotosByStage(stage PhotoStage) []Photo {
	out := make([]Photo, 0, len(j.Photos))
	for _, p := range j.Photos {
		if p.Stage == stage {
			out = append(out, p)
		}
	}
	return out
}
