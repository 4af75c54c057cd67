package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/pkg/provider"
	"github.com/oguzk/mentorlink/internal/pkg/sessionstate"
)

// MockFacultyStore is a mock implementation of FacultyStore
type MockFacultyStore struct {
	mock.Mock
}

func (m *MockFacultyStore) GetByID(ctx context.Context, facultyID string) (*models.Faculty, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Faculty), args.Error(1)
}

func (m *MockFacultyStore) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Faculty), args.Error(1)
}

// MockStudentStore is a mock implementation of StudentStore
type MockStudentStore struct {
	mock.Mock
}

func (m *MockStudentStore) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentStore) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

// MockAccountStore is a mock implementation of AccountStore
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MockMappingStore is a mock implementation of MappingStore
type MockMappingStore struct {
	mock.Mock
}

func (m *MockMappingStore) ListByFacultyID(ctx context.Context, facultyID string) ([]models.MappingEntry, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MappingEntry), args.Error(1)
}

func (m *MockMappingStore) ListByNameID(ctx context.Context, nameID string) ([]models.MappingEntry, error) {
	args := m.Called(ctx, nameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MappingEntry), args.Error(1)
}

// MockProvider is a mock implementation of provider.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetUser(ctx context.Context, credential string) (*provider.User, error) {
	args := m.Called(ctx, credential)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.User), args.Error(1)
}

// MockSessionService is a mock implementation of SessionService
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

// MockStateStore is a mock implementation of sessionstate.Store
type MockStateStore struct {
	mock.Mock
}

func (m *MockStateStore) Load(ctx context.Context, clientID string) (*sessionstate.State, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionstate.State), args.Error(1)
}

func (m *MockStateStore) Save(ctx context.Context, clientID string, state *sessionstate.State) error {
	args := m.Called(ctx, clientID, state)
	return args.Error(0)
}

func (m *MockStateStore) Clear(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}
