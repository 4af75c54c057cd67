// Package sessiontoken implements the self-issued session envelope format:
// a literal prefix marker followed by the base64 encoding of a JSON identity
// summary. Encoding and decoding are pure; decoding never fails with
// anything other than apperrors.ErrInvalidSessionFormat.
package sessiontoken

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// Prefix is the literal marker that classifies a credential as self-issued.
// A credential without it is treated as a native provider session.
const Prefix = "custom-session:"

// Summary is the identity summary carried inside a self-issued envelope
type Summary struct {
	UserID string          `json:"userId"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Type   models.UserType `json:"type"`
	IsHOD  bool            `json:"isHOD"`
	Labels []string        `json:"labels"`
}

// IsSelfIssued reports whether the credential carries the self-issued marker
func IsSelfIssued(credential string) bool {
	return strings.HasPrefix(credential, Prefix)
}

// Encode serializes the summary into a self-issued session credential
func Encode(summary *Summary) (string, error) {
	if summary == nil {
		return "", fmt.Errorf("%w: summary is nil", apperrors.ErrInvalidSessionFormat)
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidSessionFormat, err)
	}

	return Prefix + base64.StdEncoding.EncodeToString(payload), nil
}

// Decode parses a self-issued session credential back into its summary.
// It fails with apperrors.ErrInvalidSessionFormat when the marker is absent,
// the payload is not valid base64/JSON, or any of userId, email, type is
// missing.
func Decode(credential string) (*Summary, error) {
	if !strings.HasPrefix(credential, Prefix) {
		return nil, fmt.Errorf("%w: missing session marker", apperrors.ErrInvalidSessionFormat)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(credential, Prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 payload", apperrors.ErrInvalidSessionFormat)
	}

	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON payload", apperrors.ErrInvalidSessionFormat)
	}

	if summary.UserID == "" || summary.Email == "" || summary.Type == "" {
		return nil, fmt.Errorf("%w: missing required fields", apperrors.ErrInvalidSessionFormat)
	}

	return &summary, nil
}
