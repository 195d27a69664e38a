//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	resdto "havenmart/internal/handler/dto/response"
	"havenmart/tests/common/authtest"
	"havenmart/tests/common/dbtest"
	"havenmart/tests/common/httptest"
	"havenmart/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type AuthE2ETestSuite struct {
	e2e.SharedSuite
}

func TestAuthE2ESuite(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}

func (s *AuthE2ETestSuite) TestRegister() {
	s.Run("success: register sets cookie and returns the new user", func() {
		body := map[string]any{
			"name":     "New Customer",
			"email":    "newcomer@example.com",
			"password": "password123",
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", body, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("newcomer@example.com", response.User.Email)
		s.Equal("customer", response.User.Role)
		s.NotEmpty(response.AccessToken)
		s.NotNil(httptest.ExtractCookie(rec, "access_token"))
	})

	s.Run("error: registering the same email twice returns 409", func() {
		body := map[string]any{
			"name":     "New Customer",
			"email":    "taken@example.com",
			"password": "password123",
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", body, "")
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/register", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})
}

func (s *AuthE2ETestSuite) TestLogin() {
	s.Run("success: seeded user can log in", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", "customer")

		token := authtest.LoginUser(s.T(), s.Router, "customer@example.com", "password123")
		s.NotEmpty(token)
	})

	s.Run("error: wrong password returns 401", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", "customer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]any{"email": "customer@example.com", "password": "wrong-password"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: unknown email returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]any{"email": "nobody@example.com", "password": "password123"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("success: guest cart is merged on login", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", "customer")
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Merged apartment", 100_000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login",
			map[string]any{
				"email":    "customer@example.com",
				"password": "password123",
				"guest_cart": []map[string]any{
					{"property_id": propertyID.String(), "size": "standard", "quantity": 2},
				},
			}, "")
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		token := authtest.LoginUser(s.T(), s.Router, "customer@example.com", "password123")
		cartRec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/get", nil, token)

		var cart resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), cartRec, http.StatusOK, &cart)
		s.Equal(2, cart.Count)
		s.Equal(int64(200_000), cart.AmountCents)
	})
}

func (s *AuthE2ETestSuite) TestProfile() {
	s.Run("success: authenticated user reads own profile", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "profile@example.com", "customer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/user/profile", nil, token)

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("profile@example.com", response.Email)
		s.Equal("customer", response.Role)
	})

	s.Run("error: no token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/user/profile", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: garbage token returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/user/profile", nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthE2ETestSuite) TestLogout() {
	s.Run("success: logout clears the session cookie", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "bye@example.com", "customer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/logout", nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		cleared := httptest.ExtractCookie(rec, "access_token")
		if s.NotNil(cleared) {
			s.Empty(cleared.Value)
		}
	})
}
