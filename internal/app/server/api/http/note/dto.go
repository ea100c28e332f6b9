package note

import (
	"vanishnote/internal/domain/note"
)

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Text           string           `json:"text" minLength:"1" doc:"Note content; a data URI for image and audio kinds"`
	Type           note.ContentKind `json:"type,omitempty" doc:"Kind of content, one of text, image, audio"`
	ExpiryMode     string           `json:"expiryMode,omitempty" doc:"One of burn, 1hour, 24hours; defaults to burn-after-reading"`
	Password       string           `json:"password,omitempty" doc:"Password gating the note"`
	DecoyPassword  string           `json:"decoyPassword,omitempty" doc:"Decoy password revealing the decoy message"`
	DecoyMessage   string           `json:"decoyMessage,omitempty" doc:"Message shown on a decoy read"`
	AllowedCountry string           `json:"allowedCountry,omitempty" doc:"Country code restriction; Global for none"`
}

type createOutput struct {
	Body CreateResponse
}

type CreateResponse struct {
	Success    bool   `json:"success"`
	NoteID     string `json:"noteId,omitempty"`
	TrackingID string `json:"trackingId,omitempty"`
	Message    string `json:"message,omitempty"`
}

type readInput struct {
	ID           string `path:"id" example:"k3x9f2" doc:"Note identifier"`
	Country      string `header:"X-Country-Code" doc:"Caller country hint, untrusted"`
	ForwardedFor string `header:"X-Forwarded-For" doc:"Forwarded client address list, untrusted"`
	UserAgent    string `header:"User-Agent"`
	Body         readRequest
}

type readRequest struct {
	Password string `json:"password,omitempty" doc:"Password for gated notes"`
}

type readOutput struct {
	Body ReadResponse
}

type ReadResponse struct {
	Success            bool             `json:"success"`
	Note               string           `json:"note,omitempty"`
	Type               note.ContentKind `json:"type,omitempty"`
	IsDecoy            bool             `json:"isDecoy,omitempty"`
	IsPasswordRequired bool             `json:"isPasswordRequired,omitempty"`
	Message            string           `json:"message,omitempty"`
}
