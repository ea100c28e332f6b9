package note

import (
	"strings"
	"time"
)

// CountryGlobal is the sentinel value for notes without a geo-restriction.
const CountryGlobal = "Global"

// DefaultDecoyMessage is shown on a decoy read when the sender supplied none.
const DefaultDecoyMessage = "Decoy Message"

// UnknownIP is recorded when the request carries no forwarded address.
const UnknownIP = "Unknown IP"

// Supported expiry modes. Anything else falls back to burn-after-reading.
const (
	ExpiryBurn    = "burn"
	Expiry1Hour   = "1hour"
	Expiry24Hours = "24hours"
)

// Note is the stored record for a single secret. Notes are immutable once
// written; they disappear either through an explicit burn or the store's TTL.
// JSON field names are part of the store format.
type Note struct {
	Text             string      `json:"text"`
	Kind             ContentKind `json:"type"`
	BurnAfterReading bool        `json:"isBurnAfterReading"`
	Password         string      `json:"password,omitempty"`
	DecoyPassword    string      `json:"decoyPassword,omitempty"`
	DecoyMessage     string      `json:"decoyMessage,omitempty"`
	AllowedCountry   string      `json:"allowedCountry"`
	TrackingID       string      `json:"trackingId,omitempty"`
}

// ResolveExpiry maps an expiry mode to the note's TTL and burn flag.
// The 24h TTL on burn mode is a ceiling in case the note is never read.
func ResolveExpiry(mode string) (time.Duration, bool) {
	switch mode {
	case Expiry1Hour:
		return time.Hour, false
	case Expiry24Hours:
		return 24 * time.Hour, false
	default:
		return 24 * time.Hour, true
	}
}

// RequestContext carries the untrusted hints a read request arrives with.
type RequestContext struct {
	Country      string
	ForwardedFor string
	UserAgent    string
}

// ClientIP returns the first entry of the forwarded-for list, or the
// UnknownIP sentinel when the request carried none.
func (rc RequestContext) ClientIP() string {
	if rc.ForwardedFor == "" {
		return UnknownIP
	}
	ip, _, _ := strings.Cut(rc.ForwardedFor, ",")
	return strings.TrimSpace(ip)
}
