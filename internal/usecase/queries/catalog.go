package queries

import (
	"context"

	"havenmart/internal/infra"
	"havenmart/internal/pkg/errs"

	"github.com/google/uuid"
)

type PropertyReadStore interface {
	FindAll(ctx context.Context) ([]*PropertyView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

// CatalogCache fronts the read store for the hot list endpoint. A nil-safe
// implementation that misses on every call is acceptable.
type CatalogCache interface {
	GetList(ctx context.Context) ([]*PropertyView, bool)
	SetList(ctx context.Context, views []*PropertyView)
	InvalidateList(ctx context.Context)
}

type CatalogQueries interface {
	List(ctx context.Context) ([]*PropertyView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

type catalogQueriesImpl struct {
	store PropertyReadStore
	cache CatalogCache
}

func NewCatalogQueries(store PropertyReadStore, cache CatalogCache) CatalogQueries {
	return &catalogQueriesImpl{store: store, cache: cache}
}

func (q *catalogQueriesImpl) List(ctx context.Context) ([]*PropertyView, error) {
	if views, ok := q.cache.GetList(ctx); ok {
		return views, nil
	}

	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	q.cache.SetList(ctx, views)
	return views, nil
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, err
	}
	return view, nil
}
