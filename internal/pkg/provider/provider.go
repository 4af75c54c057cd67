// Package provider abstracts the native identity provider. The portal
// delegates native session credentials to the provider and only interprets
// the identity it returns; role classification happens upstream.
package provider

import "context"

// User is the provider's view of an authenticated user
type User struct {
	ID     string
	Name   string
	Email  string
	Labels []string
}

// Provider resolves a native session credential to the current user
type Provider interface {
	// GetUser validates the credential and returns the user it belongs to.
	// Any validation failure is reported as apperrors.ErrInvalidProviderSession.
	GetUser(ctx context.Context, credential string) (*User, error)
}
