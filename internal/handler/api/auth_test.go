//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"havenmart/internal/handler/api"
	resdto "havenmart/internal/handler/dto/response"
	"havenmart/internal/pkg/config"
	"havenmart/internal/pkg/cookie"
	"havenmart/internal/pkg/jwt"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"
	"havenmart/tests/common/builder"
	"havenmart/tests/common/httptest"
	"havenmart/tests/common/testutil"
	commandsmock "havenmart/tests/mock/commands"
	queriesmock "havenmart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCmds    *commandsmock.AuthCommands
	mockQueries *queriesmock.UserQueries
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCmds = new(commandsmock.AuthCommands)
	s.mockQueries = new(queriesmock.UserQueries)
	s.userID = uuid.New()
	jwtService := jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAuthHandler(s.mockCmds, s.mockQueries, config.CookieConfig{}, jwtService)

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/user/profile", func(c *gin.Context) {
		// Mock middleware behavior for the profile route.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		s.handler.Profile(c)
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: 200 OK with token cookie", func() {
		s.SetupTest()
		returnUser := builder.NewUserBuilder().BuildReadModel()
		s.mockCmds.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(&commands.LoginResult{Token: "test-jwt-token", User: returnUser}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test-jwt-token", response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)
		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.NotNil(accessCookie)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing password", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.SetupTest()
		s.mockCmds.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, commands.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 403 Forbidden for inactive account", func() {
		s.SetupTest()
		s.mockCmds.On("Login", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, commands.ErrUserInactive)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is inactive")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := map[string]any{
		"name":     "Test User",
		"email":    "new@example.com",
		"password": "password123",
	}

	s.Run("success: 201 Created with token cookie", func() {
		s.SetupTest()
		returnUser := builder.NewUserBuilder().WithEmail("new@example.com").BuildReadModel()
		s.mockCmds.On("Register", mock.Anything, mock.Anything).
			Return(&commands.LoginResult{Token: "test-jwt-token", User: returnUser}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("new@example.com", response.User.Email)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "short password", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("x", 101)), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.SetupTest()
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error: 409 Conflict when the email is taken", func() {
		s.SetupTest()
		s.mockCmds.On("Register", mock.Anything, mock.Anything).
			Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: 204 No Content clears the cookie", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestProfile() {
	url := "/user/profile"

	s.Run("success: 200 OK with profile body", func() {
		s.SetupTest()
		profile := &queries.ProfileView{ID: s.userID, Email: "test@example.com", Name: "Test User", Role: "customer"}
		s.mockQueries.On("GetProfile", mock.Anything, s.userID).Return(profile, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("test@example.com", response.Email)
	})

	s.Run("error: 401 Unauthorized without user context", func() {
		s.SetupTest()
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found for a deleted user", func() {
		s.SetupTest()
		s.mockQueries.On("GetProfile", mock.Anything, s.userID).
			Return(nil, queries.ErrUserNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "some-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
