package track

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, id string, t *Track, ttl time.Duration) error {
	args := m.Called(ctx, id, t, ttl)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, id string, t *Track) error {
	args := m.Called(ctx, id, t)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, id string) (*Track, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Track), args.Error(1)
}

func TestService_Status(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	created := time.Now().Add(-time.Hour)
	repo.On("Get", mock.Anything, "trk001").Return(&Track{
		Status:    StatusUnread,
		CreatedAt: created,
	}, nil)

	info, err := service.Status(context.Background(), "trk001")

	require.NoError(t, err)
	assert.Equal(t, StatusUnread, info.Status)
	assert.Equal(t, created, info.CreatedAt)
	repo.AssertExpectations(t)
}

func TestService_Status_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Get", mock.Anything, "gone42").Return(nil, ErrNotFound)

	_, err := service.Status(context.Background(), "gone42")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Status_StoreError(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, slog.Default())

	repo.On("Get", mock.Anything, "trk001").Return(nil, errors.New("connection refused"))

	_, err := service.Status(context.Background(), "trk001")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestNew(t *testing.T) {
	before := time.Now()
	tr := New(time.Now())

	assert.Equal(t, StatusUnread, tr.Status)
	assert.False(t, tr.CreatedAt.Before(before))
	assert.True(t, tr.ReadAt.IsZero())
}

func TestNewRead(t *testing.T) {
	readAt := time.Now()
	tr := NewRead(readAt, "203.0.113.7", "Windows - Chrome")

	assert.Equal(t, StatusRead, tr.Status)
	assert.Equal(t, readAt, tr.ReadAt)
	assert.Equal(t, "203.0.113.7", tr.IP)
	assert.Equal(t, "Windows - Chrome", tr.Device)
}
