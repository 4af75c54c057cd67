package provider

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// Config defines provider token validation settings
type Config struct {
	SecretKey string
	Issuer    string
}

// JWTProvider validates provider-issued HS256 session tokens
type JWTProvider struct {
	config Config
}

// NewJWTProvider creates a new JWTProvider
func NewJWTProvider(config Config) *JWTProvider {
	return &JWTProvider{config: config}
}

// claims defines the provider token content
type claims struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Labels []string `json:"labels,omitempty"`
	jwt.RegisteredClaims
}

// GetUser validates a provider session token and returns the current user.
// Every parse, signature, expiry or claims failure maps to
// apperrors.ErrInvalidProviderSession so callers can fail closed uniformly.
func (p *JWTProvider) GetUser(_ context.Context, credential string) (*User, error) {
	if credential == "" {
		return nil, apperrors.ErrInvalidProviderSession
	}

	parseOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if p.config.Issuer != "" {
		parseOpts = append(parseOpts, jwt.WithIssuer(p.config.Issuer))
	}

	token, err := jwt.ParseWithClaims(credential, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.config.SecretKey), nil
	}, parseOpts...)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidProviderSession, err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidProviderSession
	}

	if c.Subject == "" || c.Email == "" {
		return nil, fmt.Errorf("%w: token missing subject or email", apperrors.ErrInvalidProviderSession)
	}

	return &User{
		ID:     c.Subject,
		Name:   c.Name,
		Email:  c.Email,
		Labels: c.Labels,
	}, nil
}
