package response

import (
	"funilaria_autocolor/internal/usecase"
)

type SessionResponse struct {
	Role   string `json:"role"`
	UserID string `json:"userId,omitempty"`
	Name   string `json:"name"`
}

// LoginResponse carries the session descriptor and, for client logins, the
// job preselected for the progress view.
type LoginResponse struct {
	Session    SessionResponse `json:"session"`
	InitialJob *JobResponse    `json:"initialJob,omitempty"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	out := LoginResponse{
		Session: SessionResponse{
			Role:   string(r.Session.Role),
			UserID: r.Session.UserID,
			Name:   r.Session.Name,
		},
	}
	if r.InitialJob != nil {
		job := FromJob(*r.InitialJob)
		out.InitialJob = &job
	}
	return out
}
