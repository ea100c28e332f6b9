package note

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

type ContentKind string

const (
	KindText  ContentKind = "text"
	KindImage ContentKind = "image"
	KindAudio ContentKind = "audio"
)

func (ContentKind) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(KindText),
			string(KindImage),
			string(KindAudio),
		},
		Description: "Kind of content stored in the note",
		Examples:    []any{KindText},
	}
}

// Validate implements the huma.Validatable interface.
func (k ContentKind) Validate() error {
	switch k {
	case KindText, KindImage, KindAudio:
		return nil
	}
	return fmt.Errorf("invalid content kind: %s", k)
}

// String returns the string representation of the kind.
func (k ContentKind) String() string {
	return string(k)
}

// DisplayName returns a human-readable name for the kind.
func (k ContentKind) DisplayName() string {
	switch k {
	case KindText:
		return "Text"
	case KindImage:
		return "Image"
	case KindAudio:
		return "Audio"
	default:
		return "Unknown"
	}
}
