package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/sessionstate"
)

// Synchronizer reconciles a client's cached authentication state against
// the validity of its session credential. It compares three signals: the
// cached authenticated flag, the cached identity and the presence of the
// session cookie. It runs once per relevant state change, never on a timer,
// and is not invoked concurrently for the same client.
type Synchronizer struct {
	sessions SessionService
	states   sessionstate.Store
	logger   zerolog.Logger
}

// NewSynchronizer creates a new Synchronizer
func NewSynchronizer(sessions SessionService, states sessionstate.Store, logger zerolog.Logger) *Synchronizer {
	return &Synchronizer{
		sessions: sessions,
		states:   states,
		logger:   logger,
	}
}

// Sync reconciles the client's cached state with the given credential.
// An empty credential means the session cookie is absent. The returned
// identity is nil when the client ends up unauthenticated; validation and
// transport failures force a logout rather than surfacing an error
// (fail-closed, never fail-open).
func (s *Synchronizer) Sync(ctx context.Context, clientID, credential string) (*models.Identity, error) {
	state, err := s.states.Load(ctx, clientID)
	if err != nil {
		// Treat an unreadable state store like a miss; the session cookie
		// alone decides what happens next.
		s.logger.Warn().Err(err).Str("clientID", clientID).Msg("Failed to load client state")
		state = nil
	}

	cachedAuthenticated := state != nil && state.Authenticated
	cookiePresent := credential != ""

	switch {
	case cachedAuthenticated && !cookiePresent:
		// Cookie vanished out from under a cached session: force logout
		// without a validation round trip.
		s.logger.Info().Str("clientID", clientID).Msg("Session cookie absent, forcing logout")
		return nil, s.states.Clear(ctx, clientID)

	case cachedAuthenticated && cookiePresent:
		identity, err := s.sessions.Validate(ctx, credential)
		if err != nil {
			s.logger.Info().Err(err).Str("clientID", clientID).Msg("Cached session no longer valid, forcing logout")
			return nil, s.states.Clear(ctx, clientID)
		}

		if state.Identity == nil || state.Identity.Email != identity.Email {
			if err := s.states.Save(ctx, clientID, &sessionstate.State{Authenticated: true, Identity: identity}); err != nil {
				return nil, err
			}
		}
		return identity, nil

	case !cachedAuthenticated && cookiePresent:
		// Session restore: a cookie without cached state
		identity, err := s.sessions.Validate(ctx, credential)
		if err != nil {
			s.logger.Info().Err(err).Str("clientID", clientID).Msg("Session restore failed")
			return nil, s.states.Clear(ctx, clientID)
		}

		if err := s.states.Save(ctx, clientID, &sessionstate.State{Authenticated: true, Identity: identity}); err != nil {
			return nil, err
		}
		return identity, nil

	default:
		// Unauthenticated with no cookie: terminal idle state
		return nil, nil
	}
}

// Logout clears the client's cached state unconditionally
func (s *Synchronizer) Logout(ctx context.Context, clientID string) error {
	return s.states.Clear(ctx, clientID)
}
