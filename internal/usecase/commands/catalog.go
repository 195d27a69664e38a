package commands

import (
	"context"

	"havenmart/internal/domain/catalog"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/queries"
)

type AddPropertyParams struct {
	Title       string
	Description string
	Category    string
	Product     string
	PriceCents  int64
	Location    string
	ImageURL    *string
}

type CatalogCommands interface {
	AddProperty(ctx context.Context, params AddPropertyParams) (*queries.PropertyView, error)
}

type catalogCommandsImpl struct {
	propertyRepo PropertyRepository
	reads        queries.PropertyReadStore
	cache        queries.CatalogCache
}

func NewCatalogCommands(propertyRepo PropertyRepository, reads queries.PropertyReadStore, cache queries.CatalogCache) CatalogCommands {
	return &catalogCommandsImpl{propertyRepo: propertyRepo, reads: reads, cache: cache}
}

func (c *catalogCommandsImpl) AddProperty(ctx context.Context, params AddPropertyParams) (*queries.PropertyView, error) {
	category, err := catalog.NewCategory(params.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := catalog.NewProperty(
		params.Title,
		params.Description,
		category,
		params.Product,
		params.PriceCents,
		params.Location,
		params.ImageURL,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := c.propertyRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// The list cache now lies; drop it rather than patching it in place.
	c.cache.InvalidateList(ctx)

	view, err := c.reads.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
