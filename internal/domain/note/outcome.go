package note

// Outcome classifies the result of a read attempt.
type Outcome int

const (
	// OutcomeNotFound: the note never existed, was burned, or expired.
	OutcomeNotFound Outcome = iota
	// OutcomeDenied: the geo-fence rejected the caller.
	OutcomeDenied
	// OutcomePasswordRequired: the note is gated and the supplied password
	// was missing or wrong. The two cases share one outcome on purpose.
	OutcomePasswordRequired
	// OutcomeDecoy: the decoy password matched; a substitute message is
	// returned and the real note is untouched.
	OutcomeDecoy
	// OutcomeReal: the real payload was returned.
	OutcomeReal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeDenied:
		return "denied"
	case OutcomePasswordRequired:
		return "password_required"
	case OutcomeDecoy:
		return "decoy"
	case OutcomeReal:
		return "real"
	default:
		return "unknown"
	}
}

// ReadResult is the full result of a read attempt. Text and Kind are set
// for OutcomeReal and OutcomeDecoy; Message carries the user-facing
// explanation for the soft-failure outcomes.
type ReadResult struct {
	Outcome Outcome
	Text    string
	Kind    ContentKind
	Message string
}
