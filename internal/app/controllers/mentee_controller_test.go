package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oguzk/mentorlink/internal/app/models"
	"github.com/oguzk/mentorlink/internal/app/models/dto"
	"github.com/oguzk/mentorlink/internal/middleware"
	"github.com/oguzk/mentorlink/internal/pkg/apperrors"
)

// newMenteeTestRouter wires the mentee routes behind a session middleware
// backed by the given session mock, mirroring the production route layout.
func newMenteeTestRouter(t *testing.T) (*gin.Engine, *MockSessionService, *MockMenteeService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := new(MockSessionService)
	mentees := new(MockMenteeService)
	controller := NewMenteeController(mentees, zerolog.Nop())
	sessionMiddleware := middleware.NewSessionMiddleware(sessions, testCookieName)

	router := gin.New()
	authenticated := router.Group("")
	authenticated.Use(sessionMiddleware.RequireSession())
	{
		authenticated.GET("/mentees", controller.GetMyMentees)

		privileged := authenticated.Group("")
		privileged.Use(sessionMiddleware.RoleRequired(models.TypeAdmin, models.TypeSuperAdmin, models.TypeDeveloper))
		{
			privileged.GET("/faculty/:facultyId/mentees", controller.GetMenteesByFaculty)
		}
	}
	return router, sessions, mentees
}

func menteeRequest(path string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "credential"})
	return req
}

func facultyCaller() *models.Identity {
	return &models.Identity{
		UserID:      "usr_1",
		Email:       "ayse.demir@campus.edu",
		Type:        models.TypeFaculty,
		FacultyData: &models.Faculty{FacultyID: "F1", Email: "ayse.demir@campus.edu"},
	}
}

func TestGetMyMentees(t *testing.T) {
	router, sessions, mentees := newMenteeTestRouter(t)

	sessions.On("Validate", mock.Anything, "credential").Return(facultyCaller(), nil)
	mentees.On("ResolveMentees", mock.Anything, "F1").
		Return([]*models.Student{{StudentID: "s1"}, {StudentID: "s2"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, menteeRequest("/mentees"))

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.MenteeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Mentees, 2)
	assert.Equal(t, "s1", body.Mentees[0].StudentID)
}

func TestGetMyMenteesRequiresSession(t *testing.T) {
	router, _, mentees := newMenteeTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mentees", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mentees.AssertNotCalled(t, "ResolveMentees", mock.Anything, mock.Anything)
}

func TestGetMyMenteesRejectsStudents(t *testing.T) {
	router, sessions, mentees := newMenteeTestRouter(t)

	caller := &models.Identity{
		UserID:      "usr_2",
		Type:        models.TypeStudent,
		StudentData: &models.Student{StudentID: "s1"},
	}
	sessions.On("Validate", mock.Anything, "credential").Return(caller, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, menteeRequest("/mentees"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	mentees.AssertNotCalled(t, "ResolveMentees", mock.Anything, mock.Anything)
}

func TestGetMyMenteesDegradesOnStoreFailure(t *testing.T) {
	// A failed scan answers with an empty roster, not an error page
	router, sessions, mentees := newMenteeTestRouter(t)

	sessions.On("Validate", mock.Anything, "credential").Return(facultyCaller(), nil)
	mentees.On("ResolveMentees", mock.Anything, "F1").Return(nil, apperrors.ErrStoreUnavailable)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, menteeRequest("/mentees"))

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.MenteeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Count)
	assert.NotNil(t, body.Mentees)
}

func TestGetMenteesByFacultyPrivileged(t *testing.T) {
	router, sessions, mentees := newMenteeTestRouter(t)

	caller := &models.Identity{UserID: "usr_3", Type: models.TypeAdmin}
	sessions.On("Validate", mock.Anything, "credential").Return(caller, nil)
	mentees.On("ResolveMentees", mock.Anything, "F9").
		Return([]*models.Student{{StudentID: "s7"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, menteeRequest("/faculty/F9/mentees"))

	require.Equal(t, http.StatusOK, w.Code)

	var body dto.MenteeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestGetMenteesByFacultyForbiddenForFaculty(t *testing.T) {
	router, sessions, mentees := newMenteeTestRouter(t)

	sessions.On("Validate", mock.Anything, "credential").Return(facultyCaller(), nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, menteeRequest("/faculty/F9/mentees"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	mentees.AssertNotCalled(t, "ResolveMentees", mock.Anything, mock.Anything)
}
