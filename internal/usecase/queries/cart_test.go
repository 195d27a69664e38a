//go:build unit

package queries_test

import (
	"context"
	"testing"

	"havenmart/internal/domain/cart"
	"havenmart/internal/usecase/queries"
	queriesmock "havenmart/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CartQueriesTestSuite struct {
	suite.Suite
	carts  *queriesmock.CartReadStore
	prices *queriesmock.PriceReadStore
	q      queries.CartQueries
}

func (s *CartQueriesTestSuite) SetupTest() {
	s.carts = new(queriesmock.CartReadStore)
	s.prices = new(queriesmock.PriceReadStore)
	s.q = queries.NewCartQueries(s.carts, s.prices)
}

func TestCartQueriesSuite(t *testing.T) {
	suite.Run(t, new(CartQueriesTestSuite))
}

func (s *CartQueriesTestSuite) TestGetCart() {
	userID := uuid.New()

	s.Run("success: count and amount across sizes", func() {
		s.SetupTest()
		propertyID := uuid.New()
		lines := cart.Lines{propertyID: {"standard": 2, "deluxe": 1}}
		s.carts.On("FindByUserID", mock.Anything, userID).Return(lines, nil)
		s.prices.On("PricesByIDs", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]int64{propertyID: 1000}, nil)

		view, err := s.q.GetCart(context.Background(), userID)

		s.NoError(err)
		s.Equal(3, view.Count)
		s.Equal(int64(3000), view.AmountCents)
		s.Len(view.Lines, 2)
	})

	s.Run("success: a line for a removed property still counts but adds nothing", func() {
		s.SetupTest()
		priced := uuid.New()
		gone := uuid.New()
		lines := cart.Lines{
			priced: {"standard": 1},
			gone:   {"standard": 4},
		}
		s.carts.On("FindByUserID", mock.Anything, userID).Return(lines, nil)
		s.prices.On("PricesByIDs", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]int64{priced: 500}, nil)

		view, err := s.q.GetCart(context.Background(), userID)

		s.NoError(err)
		s.Equal(5, view.Count)
		s.Equal(int64(500), view.AmountCents)
	})

	s.Run("success: empty cart skips the price lookup", func() {
		s.SetupTest()
		s.carts.On("FindByUserID", mock.Anything, userID).Return(cart.Lines{}, nil)

		view, err := s.q.GetCart(context.Background(), userID)

		s.NoError(err)
		s.Equal(0, view.Count)
		s.Equal(int64(0), view.AmountCents)
		s.Empty(view.Lines)
		s.prices.AssertNotCalled(s.T(), "PricesByIDs")
	})

	s.Run("lines are sorted for stable payloads", func() {
		s.SetupTest()
		propertyID := uuid.New()
		lines := cart.Lines{propertyID: {"b": 1, "a": 1, "c": 1}}
		s.carts.On("FindByUserID", mock.Anything, userID).Return(lines, nil)
		s.prices.On("PricesByIDs", mock.Anything, mock.Anything).
			Return(map[uuid.UUID]int64{propertyID: 100}, nil)

		view, err := s.q.GetCart(context.Background(), userID)

		s.NoError(err)
		s.Equal("a", view.Lines[0].Size)
		s.Equal("b", view.Lines[1].Size)
		s.Equal("c", view.Lines[2].Size)
	})
}
