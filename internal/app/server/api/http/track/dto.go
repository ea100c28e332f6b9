package track

import (
	"vanishnote/internal/domain/track"
)

type statusInput struct {
	ID string `path:"id" example:"p8q2m1" doc:"Tracking identifier"`
}

type statusOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Success bool         `json:"success"`
	Info    *track.Track `json:"info,omitempty"`
	Message string       `json:"message,omitempty"`
}
