//go:build e2e

package shop_test

import (
	"net/http"
	"testing"
	"time"

	resdto "havenmart/internal/handler/dto/response"
	"havenmart/tests/common/authtest"
	"havenmart/tests/common/dbtest"
	"havenmart/tests/common/httptest"
	"havenmart/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ShopE2ETestSuite struct {
	e2e.SharedSuite
}

func TestShopE2ESuite(t *testing.T) {
	suite.Run(t, new(ShopE2ETestSuite))
}

func (s *ShopE2ETestSuite) addLine(token string, propertyID uuid.UUID, size string) {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/add",
		map[string]any{"property_id": propertyID.String(), "size": size}, token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *ShopE2ETestSuite) getCart(token string) resdto.CartResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/get", nil, token)
	var cart resdto.CartResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &cart)
	return cart
}

func (s *ShopE2ETestSuite) TestCatalog() {
	s.Run("public listing and detail", func() {
		id := dbtest.CreateTestProperty(s.T(), s.DB, "Sunny two-bedroom apartment", 25_000_000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/product/list", nil, "")
		var list struct {
			Products []resdto.PropertyResponse `json:"products"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &list)
		s.Len(list.Products, 1)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/product/"+id.String(), nil, "")
		var detail resdto.PropertyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &detail)
		s.Equal("Sunny two-bedroom apartment", detail.Title)
	})

	s.Run("only admins can add properties", func() {
		customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com", "customer")
		admin := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "agent@example.com", "admin")

		body := map[string]any{
			"title":       "Canal-side townhouse",
			"category":    "Residential Property",
			"product":     "Townhouse",
			"price_cents": 48_000_000,
			"location":    "Amsterdam",
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/product/add", body, customer)
		s.Equal(http.StatusForbidden, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/product/add", body, admin)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})
}

func (s *ShopE2ETestSuite) TestCartAndOrder() {
	s.Run("cart aggregates lines and checkout empties it", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com", "customer")
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "City loft", 150_000)

		s.addLine(token, propertyID, "standard")
		s.addLine(token, propertyID, "standard")
		s.addLine(token, propertyID, "deluxe")

		cart := s.getCart(token)
		s.Equal(3, cart.Count)
		s.Equal(int64(450_000), cart.AmountCents)
		s.Len(cart.Lines, 2)

		// overwrite one line's quantity
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/cart/update",
			map[string]any{"property_id": propertyID.String(), "size": "deluxe", "quantity": 0}, token)
		s.Equal(http.StatusOK, rec.Code, rec.Body.String())

		cart = s.getCart(token)
		s.Equal(2, cart.Count)
		s.Equal(int64(300_000), cart.AmountCents)

		// cash-on-delivery checkout
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/order/place",
			map[string]any{
				"street":  "12 Harbour Street",
				"city":    "Lisbon",
				"zip":     "1100-001",
				"country": "Portugal",
				"phone":   "+351000000000",
			}, token)
		var order resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &order)
		s.Equal(int64(300_000), order.AmountCents)
		s.Equal("cod", order.PaymentMethod)
		s.Equal("placed", order.Status)

		// checkout drained the cart
		cart = s.getCart(token)
		s.Equal(0, cart.Count)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/order/userorders", nil, token)
		var orders struct {
			Orders []resdto.OrderResponse `json:"orders"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &orders)
		s.Len(orders.Orders, 1)
		s.Equal(order.ID, orders.Orders[0].ID)
	})

	s.Run("placing an order with an empty cart fails", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com", "customer")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/order/place",
			map[string]any{
				"street":  "12 Harbour Street",
				"city":    "Lisbon",
				"zip":     "1100-001",
				"country": "Portugal",
				"phone":   "+351000000000",
			}, token)
		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})
}

func (s *ShopE2ETestSuite) TestBookings() {
	s.Run("a published slot can be booked exactly once", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com", "customer")
		rival := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "rival@example.com", "customer")
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Hillside villa", 90_000_000)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings/slots", nil, "")
		var schedule struct {
			Days []resdto.DayScheduleResponse `json:"days"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &schedule)
		s.Require().Len(schedule.Days, 7)
		s.Require().NotEmpty(schedule.Days[1].Slots, "tomorrow must have open slots")

		slot := schedule.Days[1].Slots[0].Start

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			map[string]any{
				"property_id": propertyID.String(),
				"slot_start":  slot.Format(time.RFC3339),
				"note":        "Keen to see the garden.",
			}, token)
		s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

		// same property and slot is now taken
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			map[string]any{
				"property_id": propertyID.String(),
				"slot_start":  slot.Format(time.RFC3339),
			}, rival)
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, token)
		var bookings struct {
			Bookings []resdto.BookingResponse `json:"bookings"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &bookings)
		s.Require().Len(bookings.Bookings, 1)
		s.Equal("confirmed", bookings.Bookings[0].Status)
		s.Equal("Hillside villa", bookings.Bookings[0].PropertyTitle)

		// canceling frees the slot for the rival
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/bookings/"+bookings.Bookings[0].ID, nil, token)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			map[string]any{
				"property_id": propertyID.String(),
				"slot_start":  slot.Format(time.RFC3339),
			}, rival)
		s.Equal(http.StatusCreated, rec.Code, rec.Body.String())
	})

	s.Run("off-grid times are rejected", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "viewer@example.com", "customer")
		propertyID := dbtest.CreateTestProperty(s.T(), s.DB, "Hillside villa", 90_000_000)

		offGrid := time.Now().UTC().Add(26 * time.Hour).Truncate(time.Hour).Add(17 * time.Minute)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			map[string]any{
				"property_id": propertyID.String(),
				"slot_start":  offGrid.Format(time.RFC3339),
			}, token)
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
	})
}
