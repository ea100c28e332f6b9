package track

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "track-status",
		Method:      http.MethodGet,
		Path:        "/api/track/{id}",
		Summary:     "Tracking status of a note",
		Description: "Reports whether the paired note was read and, if so, when and from where. The record outlives a burned note.",
		Tags:        []string{"track"},
		Middlewares: h.middleware,
	}
}
