//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"havenmart/internal/domain/cart"
	"havenmart/internal/infra"
	"havenmart/internal/pkg/clock"
	"havenmart/internal/pkg/config"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/commands"
	"havenmart/internal/usecase/queries"
	commandsmock "havenmart/tests/mock/commands"
	queriesmock "havenmart/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	orderRepo  *commandsmock.OrderRepository
	orderReads *queriesmock.OrderReadStore
	cartRepo   *commandsmock.CartRepository
	cartReads  *queriesmock.CartReadStore
	prices     *queriesmock.PriceReadStore
	publisher  *commandsmock.EventPublisher
	cmds       commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.orderRepo = new(commandsmock.OrderRepository)
	s.orderReads = new(queriesmock.OrderReadStore)
	s.cartRepo = new(commandsmock.CartRepository)
	s.cartReads = new(queriesmock.CartReadStore)
	s.prices = new(queriesmock.PriceReadStore)
	s.publisher = new(commandsmock.EventPublisher)
	s.cmds = commands.NewOrderCommands(
		s.orderRepo, s.orderReads, s.cartRepo, s.cartReads, s.prices, s.publisher,
		nil,
		clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)),
		config.PaymentConfig{CheckoutURL: "http://localhost:5173/verify"},
	)
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestPlace() {
	userID := uuid.New()
	params := commands.PlaceOrderParams{
		Street:  "1 Main St",
		City:    "Lisbon",
		Zip:     "1000-001",
		Country: "PT",
		Phone:   "+351000000000",
	}

	s.Run("error: empty cart rejects the checkout", func() {
		s.SetupTest()
		s.cartReads.On("FindByUserID", mock.Anything, userID).Return(cart.Lines{}, nil)

		_, err := s.cmds.Place(context.Background(), userID, params)

		s.ErrorIs(err, errs.ErrEmptyCart)
		s.prices.AssertNotCalled(s.T(), "PricesByIDs")
	})

	s.Run("error: cart with only zero quantities counts as empty", func() {
		s.SetupTest()
		lines := cart.Lines{uuid.New(): {"standard": 0}}
		s.cartReads.On("FindByUserID", mock.Anything, userID).Return(lines, nil)

		_, err := s.cmds.Place(context.Background(), userID, params)

		s.ErrorIs(err, errs.ErrEmptyCart)
	})

	s.Run("error: a cart line pointing at a removed property fails the whole checkout", func() {
		s.SetupTest()
		gone := uuid.New()
		lines := cart.Lines{gone: {"standard": 1}}
		s.cartReads.On("FindByUserID", mock.Anything, userID).Return(lines, nil)
		s.prices.On("PricesByIDs", mock.Anything, mock.Anything).Return(map[uuid.UUID]int64{}, nil)

		_, err := s.cmds.Place(context.Background(), userID, params)

		s.ErrorIs(err, errs.ErrUnknownCartLine)
		s.orderRepo.AssertNotCalled(s.T(), "Create")
	})
}

func (s *OrderCommandsTestSuite) TestVerifyStripe() {
	userID := uuid.New()
	orderID := uuid.New()

	view := &queries.OrderView{
		ID:            orderID,
		UserID:        userID,
		PaymentMethod: "stripe",
		PaymentStatus: "pending",
	}

	s.Run("success: marks the order paid", func() {
		s.SetupTest()
		s.orderReads.On("FindByID", mock.Anything, orderID).Return(view, nil)
		s.orderRepo.On("SetPaymentStatus", mock.Anything, orderID, mock.Anything).Return(nil).Once()

		s.NoError(s.cmds.VerifyStripe(context.Background(), userID, orderID, true))
		s.orderRepo.AssertExpectations(s.T())
	})

	s.Run("success: failed payment deletes the pending order", func() {
		s.SetupTest()
		s.orderReads.On("FindByID", mock.Anything, orderID).Return(view, nil)
		s.orderRepo.On("Delete", mock.Anything, orderID).Return(nil).Once()

		s.NoError(s.cmds.VerifyStripe(context.Background(), userID, orderID, false))
		s.orderRepo.AssertNotCalled(s.T(), "SetPaymentStatus")
	})

	s.Run("error: someone else's order reads as missing", func() {
		s.SetupTest()
		s.orderReads.On("FindByID", mock.Anything, orderID).Return(view, nil)

		err := s.cmds.VerifyStripe(context.Background(), uuid.New(), orderID, true)

		s.ErrorIs(err, errs.ErrOrderNotFound)
	})

	s.Run("error: missing order", func() {
		s.SetupTest()
		s.orderReads.On("FindByID", mock.Anything, orderID).
			Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		err := s.cmds.VerifyStripe(context.Background(), userID, orderID, true)

		s.ErrorIs(err, errs.ErrOrderNotFound)
	})
}
