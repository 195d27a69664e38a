package queries

import (
	"context"
	"sort"

	"havenmart/internal/domain/cart"

	"github.com/google/uuid"
)

type CartReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (cart.Lines, error)
}

type PriceReadStore interface {
	PricesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	carts  CartReadStore
	prices PriceReadStore
}

func NewCartQueries(carts CartReadStore, prices PriceReadStore) CartQueries {
	return &cartQueriesImpl{carts: carts, prices: prices}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	lines, err := q.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines = cart.Normalize(lines)

	ids := make([]uuid.UUID, 0, len(lines))
	for id := range lines {
		ids = append(ids, id)
	}

	prices := map[uuid.UUID]int64{}
	if len(ids) > 0 {
		prices, err = q.prices.PricesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
	}

	view := &CartView{
		Lines:       flattenLines(lines),
		Count:       cart.Count(lines),
		AmountCents: cart.Amount(lines, prices),
	}
	return view, nil
}

func flattenLines(lines cart.Lines) []CartLineView {
	out := make([]CartLineView, 0, len(lines))
	for propertyID, sizes := range lines {
		for size, qty := range sizes {
			out = append(out, CartLineView{PropertyID: propertyID, Size: size, Quantity: qty})
		}
	}
	// Map iteration order is random; keep the payload stable for clients.
	sort.Slice(out, func(i, j int) bool {
		if out[i].PropertyID != out[j].PropertyID {
			return out[i].PropertyID.String() < out[j].PropertyID.String()
		}
		return out[i].Size < out[j].Size
	})
	return out
}
