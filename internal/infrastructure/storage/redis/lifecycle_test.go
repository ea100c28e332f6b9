package redis

import (
	"context"
	"testing"
	"time"

	"vanishnote/internal/domain/note"
	"vanishnote/internal/domain/track"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// Full lifecycle checks against real repositories backed by miniredis.

func newTestServices(t *testing.T) (note.Servicer, track.Servicer) {
	t.Helper()

	storage, _ := newTestStorage(t)
	log := slog.Default()

	noteRepo := NewNoteRepository(storage, log)
	trackRepo := NewTrackRepository(storage, log)
	statsRepo := NewStatsRepository(storage, log)

	return note.NewService(noteRepo, trackRepo, statsRepo, log), track.NewService(trackRepo, log)
}

func TestLifecycle_BurnAfterReading(t *testing.T) {
	notes, _ := newTestServices(t)
	ctx := context.Background()

	created, err := notes.Create(ctx, note.CreateParams{Text: "one shot"})
	require.NoError(t, err)
	require.NotEmpty(t, created.NoteID)
	require.NotEmpty(t, created.TrackingID)
	require.NotEqual(t, created.NoteID, created.TrackingID)

	first, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeReal, first.Outcome)
	assert.Equal(t, "one shot", first.Text)
	assert.Equal(t, note.KindText, first.Kind)

	second, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeNotFound, second.Outcome)
}

func TestLifecycle_TimedNoteIsRepeatable(t *testing.T) {
	notes, _ := newTestServices(t)
	ctx := context.Background()

	created, err := notes.Create(ctx, note.CreateParams{Text: "keep me", ExpiryMode: note.Expiry1Hour})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		result, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{})
		require.NoError(t, err)
		assert.Equal(t, note.OutcomeReal, result.Outcome)
		assert.Equal(t, "keep me", result.Text)
	}
}

func TestLifecycle_DecoyLeavesNoteAlive(t *testing.T) {
	notes, tracks := newTestServices(t)
	ctx := context.Background()

	created, err := notes.Create(ctx, note.CreateParams{
		Text:          "real secret",
		Password:      "real",
		DecoyPassword: "1234",
		DecoyMessage:  "Grocery List",
	})
	require.NoError(t, err)

	decoy, err := notes.Read(ctx, created.NoteID, "1234", note.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeDecoy, decoy.Outcome)
	assert.Equal(t, "Grocery List", decoy.Text)

	// the decoy read changed nothing: still unread, still readable
	info, err := tracks.Status(ctx, created.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, track.StatusUnread, info.Status)

	real, err := notes.Read(ctx, created.NoteID, "real", note.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeReal, real.Outcome)
	assert.Equal(t, "real secret", real.Text)
}

func TestLifecycle_TrackingReflectsRead(t *testing.T) {
	notes, tracks := newTestServices(t)
	ctx := context.Background()

	created, err := notes.Create(ctx, note.CreateParams{Text: "watched"})
	require.NoError(t, err)

	info, err := tracks.Status(ctx, created.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, track.StatusUnread, info.Status)
	assert.False(t, info.CreatedAt.IsZero())

	_, err = notes.Read(ctx, created.NoteID, "", note.RequestContext{
		ForwardedFor: "203.0.113.7",
		UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	})
	require.NoError(t, err)

	info, err = tracks.Status(ctx, created.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, track.StatusRead, info.Status)
	assert.False(t, info.ReadAt.IsZero())
	assert.Equal(t, "203.0.113.7", info.IP)
	assert.Contains(t, info.Device, "Windows")
}

func TestLifecycle_TrackingOutlivesBurnedNote(t *testing.T) {
	notes, tracks := newTestServices(t)
	ctx := context.Background()

	created, err := notes.Create(ctx, note.CreateParams{Text: "gone soon"})
	require.NoError(t, err)

	_, err = notes.Read(ctx, created.NoteID, "", note.RequestContext{})
	require.NoError(t, err)

	// note is burned, tracking record remains
	gone, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeNotFound, gone.Outcome)

	info, err := tracks.Status(ctx, created.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, track.StatusRead, info.Status)
}

func TestLifecycle_GeoFence(t *testing.T) {
	notes, _ := newTestServices(t)
	ctx := context.Background()

	created, err := notes.Create(ctx, note.CreateParams{
		Text:           "local only",
		ExpiryMode:     note.Expiry24Hours,
		AllowedCountry: "IN",
	})
	require.NoError(t, err)

	denied, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{Country: "US"})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeDenied, denied.Outcome)

	// a missing country hint fails open
	open, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeReal, open.Outcome)

	matched, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{Country: "IN"})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeReal, matched.Outcome)
}

func TestLifecycle_ExpiredNoteIsGone(t *testing.T) {
	storage, mr := newTestStorage(t)
	log := slog.Default()
	notes := note.NewService(
		NewNoteRepository(storage, log),
		NewTrackRepository(storage, log),
		NewStatsRepository(storage, log),
		log,
	)
	ctx := context.Background()

	created, err := notes.Create(ctx, note.CreateParams{Text: "fleeting", ExpiryMode: note.Expiry1Hour})
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Second)

	result, err := notes.Read(ctx, created.NoteID, "", note.RequestContext{})
	require.NoError(t, err)
	assert.Equal(t, note.OutcomeNotFound, result.Outcome)
}
