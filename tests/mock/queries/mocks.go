//go:build unit

// Package queriesmock provides hand-written testify mocks for the read-side
// ports.
package queriesmock

import (
	"context"

	"havenmart/internal/domain/cart"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type TicketReadStore struct {
	mock.Mock
}

func (m *TicketReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.TicketView)
	return view, args.Error(1)
}

func (m *TicketReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.TicketListItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]*queries.TicketListItem)
	return items, args.Error(1)
}

func (m *TicketReadStore) FindAll(ctx context.Context) ([]*queries.TicketListItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*queries.TicketListItem)
	return items, args.Error(1)
}

type PropertyReadStore struct {
	mock.Mock
}

func (m *PropertyReadStore) FindAll(ctx context.Context) ([]*queries.PropertyView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]*queries.PropertyView)
	return views, args.Error(1)
}

func (m *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.PropertyView)
	return view, args.Error(1)
}

type PriceReadStore struct {
	mock.Mock
}

func (m *PriceReadStore) PricesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, ids)
	prices, _ := args.Get(0).(map[uuid.UUID]int64)
	return prices, args.Error(1)
}

type CartReadStore struct {
	mock.Mock
}

func (m *CartReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (cart.Lines, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).(cart.Lines)
	return lines, args.Error(1)
}

type OrderReadStore struct {
	mock.Mock
}

func (m *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	args := m.Called(ctx, userID)
	views, _ := args.Get(0).([]*queries.OrderView)
	return views, args.Error(1)
}

func (m *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.OrderView)
	return view, args.Error(1)
}

type BookingReadStore struct {
	mock.Mock
}

func (m *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	args := m.Called(ctx, userID)
	views, _ := args.Get(0).([]*queries.BookingView)
	return views, args.Error(1)
}

type UserReadStore struct {
	mock.Mock
}

func (m *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	args := m.Called(ctx, id)
	view, _ := args.Get(0).(*queries.ProfileView)
	return view, args.Error(1)
}

type CatalogCache struct {
	mock.Mock
}

func (m *CatalogCache) GetList(ctx context.Context) ([]*queries.PropertyView, bool) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]*queries.PropertyView)
	return views, args.Bool(1)
}

func (m *CatalogCache) SetList(ctx context.Context, views []*queries.PropertyView) {
	m.Called(ctx, views)
}

func (m *CatalogCache) InvalidateList(ctx context.Context) {
	m.Called(ctx)
}
