package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oguzk/mentorlink/internal/app/models"
)

// MockSessionService is a mock implementation of services.SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Validate(ctx context.Context, credential string) (*models.Identity, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Identity), args.Error(1)
}

func (m *MockSessionService) LoginWithPassword(ctx context.Context, email, password string) (*models.Identity, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Identity), args.String(1), args.Error(2)
}

// MockMenteeService is a mock implementation of services.MenteeService
type MockMenteeService struct {
	mock.Mock
}

func (m *MockMenteeService) ResolveMentees(ctx context.Context, facultyID string) ([]*models.Student, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}
