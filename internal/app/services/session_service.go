package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
	"github.com/oguzk/mentorlink/internal/pkg/provider"
	"github.com/oguzk/mentorlink/internal/pkg/sessiontoken"
)

// FacultyStore is the faculty read surface the services need
type FacultyStore interface {
	GetByID(ctx context.Context, facultyID string) (*models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
}

// StudentStore is the student read surface the services need
type StudentStore interface {
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
}

// AccountStore is the local account read surface the services need
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
}

// SessionService turns a raw session credential into a typed Identity
type SessionService interface {
	// Validate classifies and validates the credential, returning the
	// resolved Identity or one of the session error sentinels. It never
	// mutates caller state; failures are always safe to treat as
	// unauthenticated.
	Validate(ctx context.Context, credential string) (*models.Identity, error)
	// LoginWithPassword checks a local account's password and, on success,
	// returns the resolved Identity together with a freshly encoded
	// self-issued session credential.
	LoginWithPassword(ctx context.Context, email, password string) (*models.Identity, string, error)
}

// sessionServiceImpl implements the SessionService interface
type sessionServiceImpl struct {
	facultyStore FacultyStore
	studentStore StudentStore
	accountStore AccountStore
	provider     provider.Provider
	logger       zerolog.Logger
}

// NewSessionService creates a new session service instance
func NewSessionService(
	facultyStore FacultyStore,
	studentStore StudentStore,
	accountStore AccountStore,
	identityProvider provider.Provider,
	logger zerolog.Logger,
) SessionService {
	return &sessionServiceImpl{
		facultyStore: facultyStore,
		studentStore: studentStore,
		accountStore: accountStore,
		provider:     identityProvider,
		logger:       logger,
	}
}

// Validate resolves a raw credential to an Identity.
// An empty credential fails with ErrNoSession; a credential carrying the
// self-issued marker goes through the envelope path; everything else is
// delegated to the identity provider.
func (s *sessionServiceImpl) Validate(ctx context.Context, credential string) (*models.Identity, error) {
	if credential == "" {
		return nil, apperrors.ErrNoSession
	}

	if sessiontoken.IsSelfIssued(credential) {
		return s.validateSelfIssued(ctx, credential)
	}

	return s.validateNative(ctx, credential)
}

// validateSelfIssued decodes the envelope and hydrates the record it names
func (s *sessionServiceImpl) validateSelfIssued(ctx context.Context, credential string) (*models.Identity, error) {
	summary, err := sessiontoken.Decode(credential)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Rejected malformed self-issued session")
		return nil, err
	}

	return s.hydrateSummary(ctx, summary)
}

// hydrateSummary turns a decoded identity summary into a full Identity,
// fetching the Student or Faculty record when the type requires one.
// Admin, SuperAdmin and Developer summaries are valid with neither record
// populated; no deeper chain exists to verify those privileged types.
func (s *sessionServiceImpl) hydrateSummary(ctx context.Context, summary *sessiontoken.Summary) (*models.Identity, error) {
	identity := &models.Identity{
		UserID: summary.UserID,
		Name:   summary.Name,
		Email:  summary.Email,
		Type:   summary.Type,
		IsHOD:  summary.IsHOD,
		Labels: summary.Labels,
	}
	if identity.Labels == nil {
		identity.Labels = []string{}
	}

	switch summary.Type {
	case models.TypeStudent:
		student, err := s.studentStore.GetByEmail(ctx, summary.Email)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
		identity.StudentData = student

	case models.TypeFaculty:
		faculty, err := s.facultyStore.GetByEmail(ctx, summary.Email)
		if err != nil {
			if errors.Is(err, apperrors.ErrResourceNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
		identity.FacultyData = faculty
	}

	return identity, nil
}

// validateNative delegates to the identity provider, then classifies the
// role with a fixed priority chain: Faculty by email first, then Student,
// then the Admin default. An email present in both stores is always
// classified Faculty.
func (s *sessionServiceImpl) validateNative(ctx context.Context, credential string) (*models.Identity, error) {
	user, err := s.provider.GetUser(ctx, credential)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidProviderSession) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidProviderSession, err)
	}

	identity := &models.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Type:   models.TypeAdmin,
		Labels: user.Labels,
	}
	if identity.Labels == nil {
		identity.Labels = []string{}
	}

	faculty, err := s.facultyStore.GetByEmail(ctx, user.Email)
	if err == nil {
		identity.Type = models.TypeFaculty
		identity.IsHOD = faculty.IsHOD
		identity.FacultyData = faculty
		return identity, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	student, err := s.studentStore.GetByEmail(ctx, user.Email)
	if err == nil {
		identity.Type = models.TypeStudent
		identity.StudentData = student
		return identity, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return nil, err
	}

	// No record in either store: a provider-managed user without campus
	// records defaults to Admin.
	return identity, nil
}

// LoginWithPassword authenticates against a local account and issues a
// self-issued session credential for it
func (s *sessionServiceImpl) LoginWithPassword(ctx context.Context, email, password string) (*models.Identity, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	account, err := s.accountStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("email", email).Msg("Password mismatch on local account login")
		return nil, "", apperrors.ErrInvalidCredentials
	}

	summary := &sessiontoken.Summary{
		UserID: account.UserID,
		Name:   account.Name,
		Email:  account.Email,
		Type:   account.Type,
		IsHOD:  account.IsHOD,
		Labels: account.Labels,
	}

	credential, err := sessiontoken.Encode(summary)
	if err != nil {
		return nil, "", err
	}

	identity, err := s.hydrateSummary(ctx, summary)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("userID", account.UserID).Str("type", string(account.Type)).Msg("Issued self-issued session")
	return identity, credential, nil
}
