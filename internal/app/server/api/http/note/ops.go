package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-create",
		Method:      http.MethodPost,
		Path:        "/api/notes",
		Summary:     "Create an ephemeral note",
		Description: "Stores a secret behind a short identifier, optionally gated by a password, a decoy password or a geo-fence, and returns the paired tracking identifier.",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) readOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-read",
		Method:      http.MethodPost,
		Path:        "/api/notes/{id}/read",
		Summary:     "Attempt to read a note",
		Description: "Applies the access rules in order (geo-fence, decoy password, real password) and returns the payload, a decoy message, a denial or a password challenge. Burn-after-reading notes are destroyed on the first real read.",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}
