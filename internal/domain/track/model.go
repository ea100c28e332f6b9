package track

import (
	"time"
)

// Status of a tracking record.
type Status string

const (
	StatusUnread Status = "Unread"
	StatusRead   Status = "Read"
)

// TTL is the fixed lifetime of a tracking record. It is longer than the
// maximum note TTL so tracking data can outlive a burned note.
const TTL = 7 * 24 * time.Hour

// Track records whether and from where a note was consumed. A fresh record
// is Unread; a real (non-decoy) read overwrites it with the read details.
// JSON field names are part of the store format.
type Track struct {
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
	ReadAt    time.Time `json:"readAt,omitzero"`
	IP        string    `json:"ip,omitempty"`
	Device    string    `json:"device,omitempty"`
}

// New returns an unread tracking record created at the given time.
func New(createdAt time.Time) *Track {
	return &Track{
		Status:    StatusUnread,
		CreatedAt: createdAt,
	}
}

// NewRead returns a tracking record describing a completed read.
func NewRead(readAt time.Time, ip, device string) *Track {
	return &Track{
		Status: StatusRead,
		ReadAt: readAt,
		IP:     ip,
		Device: device,
	}
}
