package repository

import (
	"context"

	"havenmart/internal/domain/cart"
	"havenmart/internal/infra"
	"havenmart/internal/infra/db"

	"github.com/google/uuid"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(db db.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

// IncrementLine upserts the (user, property, size) row, summing quantities.
func (r *CartRepository) IncrementLine(ctx context.Context, userID, propertyID uuid.UUID, size string, delta int) error {
	const q = `
		INSERT INTO cart_lines (user_id, property_id, size, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, property_id, size)
		DO UPDATE SET quantity = cart_lines.quantity + EXCLUDED.quantity, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, userID, propertyID, size, delta); err != nil {
		return infra.WrapRepoErr("failed to increment cart line", err, infra.ClassifyPgError(err))
	}
	return nil
}

// SetLine overwrites the quantity; zero deletes the row so the table never
// holds empty lines.
func (r *CartRepository) SetLine(ctx context.Context, userID, propertyID uuid.UUID, size string, quantity int) error {
	if quantity == 0 {
		const del = `DELETE FROM cart_lines WHERE user_id = $1 AND property_id = $2 AND size = $3`
		if _, err := r.db.Exec(ctx, del, userID, propertyID, size); err != nil {
			return infra.WrapRepoErr("failed to remove cart line", err)
		}
		return nil
	}

	const q = `
		INSERT INTO cart_lines (user_id, property_id, size, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, property_id, size)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`

	if _, err := r.db.Exec(ctx, q, userID, propertyID, size, quantity); err != nil {
		return infra.WrapRepoErr("failed to set cart line", err, infra.ClassifyPgError(err))
	}
	return nil
}

func (r *CartRepository) MergeLines(ctx context.Context, userID uuid.UUID, lines cart.Lines) error {
	for propertyID, sizes := range lines {
		for size, qty := range sizes {
			if qty <= 0 {
				continue
			}
			if err := r.IncrementLine(ctx, userID, propertyID, size, qty); err != nil {
				// Unknown guest property ids are dropped, not fatal.
				if infra.IsKind(err, infra.KindForeignKeyViolated) {
					continue
				}
				return err
			}
		}
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	const q = `DELETE FROM cart_lines WHERE user_id = $1`

	if _, err := tx.Exec(ctx, q, userID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return nil
}
