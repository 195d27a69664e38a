package commands

import (
	"context"

	"havenmart/internal/infra"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidQuantity = errs.New("quantity cannot be negative")

type CartCommands interface {
	// AddLine bumps the (property, size) quantity by one.
	AddLine(ctx context.Context, userID, propertyID uuid.UUID, size string) error
	// SetLine overwrites the quantity; zero removes the line.
	SetLine(ctx context.Context, userID, propertyID uuid.UUID, size string, quantity int) error
}

type cartCommandsImpl struct {
	cartRepo   CartRepository
	properties queries.PropertyReadStore
}

func NewCartCommands(cartRepo CartRepository, properties queries.PropertyReadStore) CartCommands {
	return &cartCommandsImpl{cartRepo: cartRepo, properties: properties}
}

func (c *cartCommandsImpl) AddLine(ctx context.Context, userID, propertyID uuid.UUID, size string) error {
	if err := c.ensureProperty(ctx, propertyID); err != nil {
		return err
	}

	if err := c.cartRepo.IncrementLine(ctx, userID, propertyID, size, 1); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *cartCommandsImpl) SetLine(ctx context.Context, userID, propertyID uuid.UUID, size string, quantity int) error {
	if quantity < 0 {
		return errs.Mark(ErrInvalidQuantity, errs.ErrDomainValidation)
	}
	if err := c.ensureProperty(ctx, propertyID); err != nil {
		return err
	}

	if err := c.cartRepo.SetLine(ctx, userID, propertyID, size, quantity); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *cartCommandsImpl) ensureProperty(ctx context.Context, propertyID uuid.UUID) error {
	if _, err := c.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrPropertyNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
