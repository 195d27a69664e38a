package readstore

import (
	"context"

	"havenmart/internal/domain/cart"
	"havenmart/internal/infra"
	"havenmart/internal/infra/db"

	"github.com/google/uuid"
)

type CartReadStore struct {
	db db.DBTX
}

func NewCartReadStore(db db.DBTX) *CartReadStore {
	return &CartReadStore{db: db}
}

func (r *CartReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) (cart.Lines, error) {
	const q = `
		SELECT property_id, size, quantity
		FROM cart_lines
		WHERE user_id = $1`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart", err)
	}
	defer rows.Close()

	lines := cart.Lines{}
	for rows.Next() {
		var (
			propertyID uuid.UUID
			size       string
			quantity   int
		)
		if err := rows.Scan(&propertyID, &size, &quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart line", err)
		}
		if lines[propertyID] == nil {
			lines[propertyID] = map[string]int{}
		}
		lines[propertyID][size] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate cart lines", err)
	}
	return lines, nil
}
