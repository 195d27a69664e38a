//go:build e2e

package ticket_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	resdto "havenmart/internal/handler/dto/response"
	"havenmart/tests/common/authtest"
	"havenmart/tests/common/httptest"
	"havenmart/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type TicketE2ETestSuite struct {
	e2e.SharedSuite
}

func TestTicketE2ESuite(t *testing.T) {
	suite.Run(t, new(TicketE2ETestSuite))
}

func (s *TicketE2ETestSuite) createTicket(token string) resdto.TicketResponse {
	body := map[string]any{
		"category": "Residential Property",
		"product":  "Apartment",
		"subject":  "Broken listing photos",
		"inquiry":  "The gallery on my listing shows someone else's kitchen.",
	}

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/tickets/create", body, token)

	var response resdto.TicketResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return response
}

func (s *TicketE2ETestSuite) TestTicketLifecycle() {
	s.Run("create, list, reply and delete", func() {
		customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "requester@example.com", "customer")
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "support@example.com", "admin")

		created := s.createTicket(customer)
		s.Equal("pending", created.Status)
		s.NotNil(created.Replies)
		s.Empty(created.Replies)

		// listing shows the new ticket
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/tickets/user", nil, customer)
		var list struct {
			Tickets []resdto.TicketListItemResponse `json:"tickets"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Len(list.Tickets, 1)
		s.Equal(created.ID, list.Tickets[0].ID)

		// the first admin reply resolves the ticket
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/tickets/reply",
			map[string]any{"ticket_id": created.ID, "message": "We replaced the gallery images."}, admin)
		var replied resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &replied)
		s.Equal("resolved", replied.Status)
		s.Len(replied.Replies, 1)
		s.Equal("We replaced the gallery images.", replied.Replies[0].Message)

		// the requester sees the reply
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/tickets/get/"+created.ID, nil, customer)
		var fetched resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
		s.Equal("resolved", fetched.Status)
		s.Len(fetched.Replies, 1)

		// and can delete the ticket afterwards
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/tickets/delete/"+created.ID, nil, customer)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/tickets/get/"+created.ID, nil, customer)
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

func (s *TicketE2ETestSuite) TestEditCooldown() {
	s.Run("a fresh ticket cannot be edited for 24 hours", func() {
		customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "requester@example.com", "customer")
		created := s.createTicket(customer)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/tickets/update/"+created.ID,
			map[string]any{"subject": "Second thoughts"}, customer)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "Edit cooldown active")

		var body struct {
			Detail resdto.CooldownResponse `json:"detail"`
		}
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))

		nextAllowed, err := time.Parse(time.RFC3339, body.Detail.NextAllowedAt)
		s.NoError(err)
		s.WithinDuration(time.Now().Add(24*time.Hour), nextAllowed, time.Minute)
	})

	s.Run("backdating the last edit reopens the ticket for editing", func() {
		customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "requester@example.com", "customer")
		created := s.createTicket(customer)

		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE tickets SET updated_at = now() - interval '25 hours' WHERE id = $1", created.ID)
		s.NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/tickets/update/"+created.ID,
			map[string]any{"subject": "Photos are still wrong"}, customer)

		var updated resdto.TicketResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &updated)
		s.Equal("Photos are still wrong", updated.Subject)

		// the successful edit restarts the cooldown
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/api/tickets/update/"+created.ID,
			map[string]any{"subject": "One more change"}, customer)
		s.Equal(http.StatusTooManyRequests, rec.Code, rec.Body.String())
	})
}

func (s *TicketE2ETestSuite) TestAccessControl() {
	s.Run("tickets are private to their requester", func() {
		owner := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "customer")
		stranger := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "stranger@example.com", "customer")
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "support@example.com", "admin")

		created := s.createTicket(owner)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/tickets/get/"+created.ID, nil, stranger)
		s.Equal(http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/tickets/get/"+created.ID, nil, admin)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("admin routes reject customers", func() {
		customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", "customer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/tickets/all", nil, customer)
		s.Equal(http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/tickets/reply",
			map[string]any{"ticket_id": "00000000-0000-0000-0000-000000000000", "message": "hi"}, customer)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}
