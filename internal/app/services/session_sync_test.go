package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
	"github.com/oguzk/mentorlink/internal/pkg/sessionstate"
)

func facultyIdentity(email string) *models.Identity {
	return &models.Identity{UserID: "usr_1", Email: email, Type: models.TypeFaculty}
}

func TestSyncCookieAbsentForcesLogoutWithoutValidation(t *testing.T) {
	// Exactly one clear, zero validation round trips
	sessions := new(MockSessionService)
	states := new(MockStateStore)
	sync := NewSynchronizer(sessions, states, zerolog.Nop())

	states.On("Load", mock.Anything, "client-1").
		Return(&sessionstate.State{Authenticated: true, Identity: facultyIdentity("a@campus.edu")}, nil)
	states.On("Clear", mock.Anything, "client-1").Return(nil).Once()

	identity, err := sync.Sync(context.Background(), "client-1", "")
	require.NoError(t, err)

	assert.Nil(t, identity)
	states.AssertExpectations(t)
	sessions.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
}

func TestSyncInvalidSessionForcesLogout(t *testing.T) {
	sessions := new(MockSessionService)
	states := sessionstate.NewMemoryStore()
	sync := NewSynchronizer(sessions, states, zerolog.Nop())

	ctx := context.Background()
	require.NoError(t, states.Save(ctx, "client-1",
		&sessionstate.State{Authenticated: true, Identity: facultyIdentity("a@campus.edu")}))

	sessions.On("Validate", mock.Anything, "stale-credential").Return(nil, apperrors.ErrInvalidProviderSession)

	identity, err := sync.Sync(ctx, "client-1", "stale-credential")
	require.NoError(t, err)
	assert.Nil(t, identity)

	state, err := states.Load(ctx, "client-1")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSyncValidSessionKeepsCachedIdentity(t *testing.T) {
	sessions := new(MockSessionService)
	states := sessionstate.NewMemoryStore()
	sync := NewSynchronizer(sessions, states, zerolog.Nop())

	ctx := context.Background()
	cached := facultyIdentity("a@campus.edu")
	require.NoError(t, states.Save(ctx, "client-1", &sessionstate.State{Authenticated: true, Identity: cached}))

	sessions.On("Validate", mock.Anything, "credential").Return(facultyIdentity("a@campus.edu"), nil)

	identity, err := sync.Sync(ctx, "client-1", "credential")
	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "a@campus.edu", identity.Email)

	state, err := states.Load(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.Authenticated)
}

func TestSyncEmailChangeReplacesCachedIdentity(t *testing.T) {
	sessions := new(MockSessionService)
	states := sessionstate.NewMemoryStore()
	sync := NewSynchronizer(sessions, states, zerolog.Nop())

	ctx := context.Background()
	require.NoError(t, states.Save(ctx, "client-1",
		&sessionstate.State{Authenticated: true, Identity: facultyIdentity("old@campus.edu")}))

	replacement := facultyIdentity("new@campus.edu")
	sessions.On("Validate", mock.Anything, "credential").Return(replacement, nil)

	identity, err := sync.Sync(ctx, "client-1", "credential")
	require.NoError(t, err)
	assert.Equal(t, "new@campus.edu", identity.Email)

	state, err := states.Load(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, "new@campus.edu", state.Identity.Email)
}

func TestSyncSessionRestore(t *testing.T) {
	// Cookie present with no cached state adopts the validated identity
	sessions := new(MockSessionService)
	states := sessionstate.NewMemoryStore()
	sync := NewSynchronizer(sessions, states, zerolog.Nop())

	ctx := context.Background()
	restored := facultyIdentity("a@campus.edu")
	sessions.On("Validate", mock.Anything, "credential").Return(restored, nil)

	identity, err := sync.Sync(ctx, "client-1", "credential")
	require.NoError(t, err)
	assert.Equal(t, restored, identity)

	state, err := states.Load(ctx, "client-1")
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.Authenticated)
	assert.Equal(t, "a@campus.edu", state.Identity.Email)
}

func TestSyncIdleStateIsNoOp(t *testing.T) {
	sessions := new(MockSessionService)
	states := new(MockStateStore)
	sync := NewSynchronizer(sessions, states, zerolog.Nop())

	states.On("Load", mock.Anything, "client-1").Return(nil, nil)

	identity, err := sync.Sync(context.Background(), "client-1", "")
	require.NoError(t, err)

	assert.Nil(t, identity)
	sessions.AssertNotCalled(t, "Validate", mock.Anything, mock.Anything)
	states.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	states.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncRestoreFailureStaysLoggedOut(t *testing.T) {
	sessions := new(MockSessionService)
	states := sessionstate.NewMemoryStore()
	sync := NewSynchronizer(sessions, states, zerolog.Nop())

	sessions.On("Validate", mock.Anything, "bad-credential").Return(nil, apperrors.ErrInvalidSessionFormat)

	identity, err := sync.Sync(context.Background(), "client-1", "bad-credential")
	require.NoError(t, err)
	assert.Nil(t, identity)

	state, err := states.Load(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Nil(t, state)
}
