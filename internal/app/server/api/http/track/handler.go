package track

import (
	"context"
	"errors"

	"vanishnote/internal/domain/track"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    track.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service track.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statusOp(), h.status)
}

func (h *Handler) status(ctx context.Context, input *statusInput) (*statusOutput, error) {
	info, err := h.service.Status(ctx, input.ID)
	if err != nil {
		if errors.Is(err, track.ErrNotFound) {
			return &statusOutput{Body: StatusResponse{
				Message: "Not found",
			}}, nil
		}
		return nil, huma.Error500InternalServerError("Internal Server Error")
	}

	return &statusOutput{Body: StatusResponse{
		Success: true,
		Info:    info,
	}}, nil
}
