package note

import (
	"context"
	"errors"

	"vanishnote/internal/domain/note"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.readOp(), h.read)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	result, err := h.service.Create(ctx, note.CreateParams{
		Text:           input.Body.Text,
		Kind:           input.Body.Type,
		ExpiryMode:     input.Body.ExpiryMode,
		Password:       input.Body.Password,
		DecoyPassword:  input.Body.DecoyPassword,
		DecoyMessage:   input.Body.DecoyMessage,
		AllowedCountry: input.Body.AllowedCountry,
	})
	if err != nil {
		if errors.Is(err, note.ErrEmptyContent) {
			return nil, huma.Error400BadRequest("Content missing")
		}
		return nil, huma.Error500InternalServerError("Server Error")
	}

	return &createOutput{
		Body: CreateResponse{
			Success:    true,
			NoteID:     result.NoteID,
			TrackingID: result.TrackingID,
		},
	}, nil
}

func (h *Handler) read(ctx context.Context, input *readInput) (*readOutput, error) {
	result, err := h.service.Read(ctx, input.ID, input.Body.Password, note.RequestContext{
		Country:      input.Country,
		ForwardedFor: input.ForwardedFor,
		UserAgent:    input.UserAgent,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}

	switch result.Outcome {
	case note.OutcomeNotFound:
		return &readOutput{Body: ReadResponse{
			Message: "This note has expired or does not exist.",
		}}, nil
	case note.OutcomeDenied:
		return &readOutput{Body: ReadResponse{
			Message: result.Message,
		}}, nil
	case note.OutcomePasswordRequired:
		return &readOutput{Body: ReadResponse{
			IsPasswordRequired: true,
			Message:            result.Message,
		}}, nil
	case note.OutcomeDecoy:
		return &readOutput{Body: ReadResponse{
			Success: true,
			Note:    result.Text,
			Type:    result.Kind,
			IsDecoy: true,
		}}, nil
	default:
		return &readOutput{Body: ReadResponse{
			Success: true,
			Note:    result.Text,
			Type:    result.Kind,
		}}, nil
	}
}
