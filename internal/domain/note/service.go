package note

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"vanishnote/internal/domain/track"
	"vanishnote/internal/utils/device"
	"vanishnote/internal/utils/token"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

// Service implements the note lifecycle and the access-control rules for
// read attempts. It holds no mutable state; concurrency correctness is
// delegated to the store's per-key atomicity. Two overlapping reads of a
// burn-after-reading note race on the delete and may both see the payload;
// the property guaranteed is "destroyed soon after first read", not
// "exactly-once read".
type Service struct {
	notes  Repository
	tracks track.Repository
	stats  StatsRepository
	log    *slog.Logger
}

type Servicer interface {
	Create(ctx context.Context, params CreateParams) (CreateResult, error)
	Read(ctx context.Context, noteID, password string, rc RequestContext) (ReadResult, error)
}

// CreateParams carries the sender's submission.
type CreateParams struct {
	Text           string
	Kind           ContentKind
	ExpiryMode     string
	Password       string
	DecoyPassword  string
	DecoyMessage   string
	AllowedCountry string
}

// CreateResult holds the two independently generated identifiers.
type CreateResult struct {
	NoteID     string
	TrackingID string
}

// NewService creates a new note service.
func NewService(notes Repository, tracks track.Repository, stats StatsRepository, log *slog.Logger) Servicer {
	return &Service{
		notes:  notes,
		tracks: tracks,
		stats:  stats,
		log:    log.With("component", "note_service"),
	}
}

// Create stores a new note and its paired unread tracking record, and bumps
// the global creation counter. The three writes run concurrently; a counter
// failure is logged and never fails creation.
func (s *Service) Create(ctx context.Context, params CreateParams) (CreateResult, error) {
	if params.Text == "" {
		return CreateResult{}, ErrEmptyContent
	}

	kind := params.Kind
	if kind == "" {
		kind = KindText
	}

	country := params.AllowedCountry
	if country == "" {
		country = CountryGlobal
	}

	noteID, err := token.Short()
	if err != nil {
		return CreateResult{}, fmt.Errorf("generate note id: %w", err)
	}
	trackingID, err := token.Short()
	if err != nil {
		return CreateResult{}, fmt.Errorf("generate tracking id: %w", err)
	}

	ttl, burn := ResolveExpiry(params.ExpiryMode)
	n := &Note{
		Text:             params.Text,
		Kind:             kind,
		BurnAfterReading: burn,
		Password:         params.Password,
		DecoyPassword:    params.DecoyPassword,
		DecoyMessage:     params.DecoyMessage,
		AllowedCountry:   country,
		TrackingID:       trackingID,
	}
	tr := track.New(time.Now())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.notes.Save(gctx, noteID, n, ttl)
	})
	g.Go(func() error {
		return s.tracks.Save(gctx, trackingID, tr, track.TTL)
	})
	g.Go(func() error {
		// Best-effort counter; must not fail creation.
		if _, err := s.stats.IncrementCreated(gctx); err != nil {
			s.log.Warn("failed to increment creation counter", "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to persist note", "note_id", noteID, "error", err)
		return CreateResult{}, fmt.Errorf("persist note: %w", err)
	}

	s.log.Info("note created",
		"note_id", noteID,
		"kind", kind,
		"burn_after_reading", burn,
		"ttl", ttl,
	)

	return CreateResult{NoteID: noteID, TrackingID: trackingID}, nil
}

// Read decides the outcome of a read attempt. The rules run in a fixed
// precedence order, each one short-circuiting:
//
//  1. missing note -> OutcomeNotFound
//  2. geo-fence (fail-open when no country hint is present)
//  3. decoy password -> OutcomeDecoy, no tracking update, no burn
//  4. real password gate -> OutcomePasswordRequired
//  5. tracking update and burn side effects, best-effort
//  6. OutcomeReal with the payload
//
// Only a store failure on the initial load is returned as an error; side
// effect failures degrade observability, never availability.
func (s *Service) Read(ctx context.Context, noteID, password string, rc RequestContext) (ReadResult, error) {
	n, err := s.notes.Get(ctx, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ReadResult{Outcome: OutcomeNotFound}, nil
		}
		s.log.Error("failed to load note", "note_id", noteID, "error", err)
		return ReadResult{}, fmt.Errorf("load note: %w", err)
	}

	if n.AllowedCountry != CountryGlobal && rc.Country != "" && rc.Country != n.AllowedCountry {
		s.log.Info("read denied by geo-fence",
			"note_id", noteID,
			"allowed_country", n.AllowedCountry,
			"request_country", rc.Country,
		)
		return ReadResult{
			Outcome: OutcomeDenied,
			Message: fmt.Sprintf("Access Denied. This note is restricted to: %s", n.AllowedCountry),
		}, nil
	}

	// Decoy wins over the real password when both match. A decoy read
	// leaves the real note and its tracking record untouched.
	if n.DecoyPassword != "" && password == n.DecoyPassword {
		msg := n.DecoyMessage
		if msg == "" {
			msg = DefaultDecoyMessage
		}
		return ReadResult{
			Outcome: OutcomeDecoy,
			Text:    msg,
			Kind:    KindText,
		}, nil
	}

	if n.Password != "" && password != n.Password {
		msg := "Incorrect Password."
		if password == "" {
			msg = "This note is password protected."
		}
		return ReadResult{Outcome: OutcomePasswordRequired, Message: msg}, nil
	}

	s.finishRead(ctx, noteID, n, rc)

	return ReadResult{
		Outcome: OutcomeReal,
		Text:    n.Text,
		Kind:    n.Kind,
	}, nil
}

// finishRead runs the post-decision side effects: overwriting the tracking
// record with the read details and burning the note if it is single-read.
// Both are always attempted, run concurrently, and swallow their errors.
func (s *Service) finishRead(ctx context.Context, noteID string, n *Note, rc RequestContext) {
	var wg sync.WaitGroup

	if n.TrackingID != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr := track.NewRead(time.Now(), rc.ClientIP(), device.Describe(rc.UserAgent))
			if err := s.tracks.Update(ctx, n.TrackingID, tr); err != nil {
				s.log.Error("failed to update tracking record",
					"note_id", noteID,
					"tracking_id", n.TrackingID,
					"error", err,
				)
			}
		}()
	}

	if n.BurnAfterReading {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.notes.Delete(ctx, noteID); err != nil {
				s.log.Error("failed to burn note", "note_id", noteID, "error", err)
				return
			}
			s.log.Info("note burned", "note_id", noteID)
		}()
	}

	wg.Wait()
}
