package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"

	"havenmart/internal/domain/cart"
	"havenmart/internal/domain/order"
	"havenmart/internal/infra"
	"havenmart/internal/pkg/clock"
	"havenmart/internal/pkg/config"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidPaymentMethod = errs.New("unknown payment method")

type PlaceOrderParams struct {
	Street  string
	City    string
	Zip     string
	Country string
	Phone   string
}

// StripeSession is what the client needs to continue checkout on the
// payment page.
type StripeSession struct {
	OrderID    uuid.UUID `json:"order_id"`
	SessionURL string    `json:"session_url"`
}

type OrderCommands interface {
	// Place checks out the whole server-side cart with cash on delivery.
	Place(ctx context.Context, userID uuid.UUID, params PlaceOrderParams) (*queries.OrderView, error)
	// PlaceStripe places a pending order and returns the checkout redirect.
	PlaceStripe(ctx context.Context, userID uuid.UUID, params PlaceOrderParams) (*StripeSession, error)
	// VerifyStripe confirms or abandons a stripe order after redirect.
	VerifyStripe(ctx context.Context, userID, orderID uuid.UUID, success bool) error
}

type orderCommandsImpl struct {
	orderRepo  OrderRepository
	orderReads queries.OrderReadStore
	cartRepo   CartRepository
	cartReads  queries.CartReadStore
	prices     queries.PriceReadStore
	publisher  EventPublisher
	db         *pgxpool.Pool
	clock      clock.Clock
	payment    config.PaymentConfig
}

func NewOrderCommands(
	orderRepo OrderRepository,
	orderReads queries.OrderReadStore,
	cartRepo CartRepository,
	cartReads queries.CartReadStore,
	prices queries.PriceReadStore,
	publisher EventPublisher,
	db *pgxpool.Pool,
	clock clock.Clock,
	payment config.PaymentConfig,
) OrderCommands {
	return &orderCommandsImpl{
		orderRepo:  orderRepo,
		orderReads: orderReads,
		cartRepo:   cartRepo,
		cartReads:  cartReads,
		prices:     prices,
		publisher:  publisher,
		db:         db,
		clock:      clock,
		payment:    payment,
	}
}

func (o *orderCommandsImpl) Place(ctx context.Context, userID uuid.UUID, params PlaceOrderParams) (*queries.OrderView, error) {
	entity, err := o.checkout(ctx, userID, params, order.PaymentCOD)
	if err != nil {
		return nil, err
	}

	o.publishPlaced(ctx, entity)

	view, err := o.orderReads.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (o *orderCommandsImpl) PlaceStripe(ctx context.Context, userID uuid.UUID, params PlaceOrderParams) (*StripeSession, error) {
	entity, err := o.checkout(ctx, userID, params, order.PaymentStripe)
	if err != nil {
		return nil, err
	}

	o.publishPlaced(ctx, entity)

	return &StripeSession{
		OrderID:    entity.ID(),
		SessionURL: o.sessionURL(entity.ID()),
	}, nil
}

// VerifyStripe is the redirect target callback. Success marks the order
// paid; anything else deletes it so the catalog state never shows an
// abandoned checkout.
func (o *orderCommandsImpl) VerifyStripe(ctx context.Context, userID, orderID uuid.UUID, success bool) error {
	view, err := o.orderReads.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrOrderNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if view.UserID != userID {
		return errs.ErrOrderNotFound
	}

	if !success {
		if err := o.orderRepo.Delete(ctx, orderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	}

	if err := o.orderRepo.SetPaymentStatus(ctx, orderID, order.PaymentPaid); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// checkout converts the server-side cart into an order and clears the cart
// in the same transaction. Every cart line is revalidated against the
// catalog; an unknown property id fails the whole checkout.
func (o *orderCommandsImpl) checkout(ctx context.Context, userID uuid.UUID, params PlaceOrderParams, method order.PaymentMethod) (*order.Order, error) {
	if !method.IsValid() {
		return nil, errs.Mark(ErrInvalidPaymentMethod, errs.ErrDomainValidation)
	}

	raw, err := o.cartReads.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	lines := cart.Normalize(raw)
	if len(lines) == 0 {
		return nil, errs.ErrEmptyCart
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}
	prices, err := o.prices.PricesByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	orderLines := make([]order.Line, 0, len(lines))
	for propertyID, sizes := range lines {
		unit, ok := prices[propertyID]
		if !ok {
			return nil, errs.Wrapf(errs.ErrUnknownCartLine, "property %s is no longer in the catalog", propertyID)
		}
		for size, qty := range sizes {
			orderLines = append(orderLines, order.Line{
				PropertyID:     propertyID,
				Size:           size,
				Quantity:       qty,
				UnitPriceCents: unit,
			})
		}
	}
	sort.Slice(orderLines, func(i, j int) bool {
		if orderLines[i].PropertyID != orderLines[j].PropertyID {
			return orderLines[i].PropertyID.String() < orderLines[j].PropertyID.String()
		}
		return orderLines[i].Size < orderLines[j].Size
	})

	address := order.Address{
		Street:  params.Street,
		City:    params.City,
		Zip:     params.Zip,
		Country: params.Country,
		Phone:   params.Phone,
	}

	entity, err := order.NewOrder(userID, orderLines, address, method)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tx, err := o.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	if _, err := o.orderRepo.Create(ctx, tx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := o.cartRepo.Clear(ctx, tx, userID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity, nil
}

func (o *orderCommandsImpl) publishPlaced(ctx context.Context, entity *order.Order) {
	if pubErr := o.publisher.PublishOrderPlaced(ctx, OrderPlacedEvent{
		OrderID:       entity.ID(),
		UserID:        entity.UserID(),
		AmountCents:   entity.AmountCents(),
		PaymentMethod: string(entity.PaymentMethod()),
		PlacedAt:      o.clock.Now(),
	}); pubErr != nil {
		slog.Warn("failed to publish order.placed event", "order_id", entity.ID(), "error", pubErr.Error())
	}
}

func (o *orderCommandsImpl) sessionURL(orderID uuid.UUID) string {
	return fmt.Sprintf("%s?orderId=%s", o.payment.CheckoutURL, url.QueryEscape(orderID.String()))
}
