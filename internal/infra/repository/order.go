package repository

import (
	"context"

	"havenmart/internal/domain/order"
	"havenmart/internal/infra"
	"havenmart/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts the order header and its lines in the caller's transaction.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	const header = `
		INSERT INTO orders (id, user_id, amount_cents, street, city, zip, country, phone, payment_method, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	addr := o.Address()
	var id uuid.UUID
	err := tx.QueryRow(ctx, header,
		o.ID(),
		o.UserID(),
		o.AmountCents(),
		addr.Street,
		addr.City,
		addr.Zip,
		addr.Country,
		addr.Phone,
		string(o.PaymentMethod()),
		string(o.PaymentStatus()),
		string(o.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err, infra.ClassifyPgError(err))
	}

	const line = `
		INSERT INTO order_lines (order_id, property_id, size, quantity, unit_price_cents)
		VALUES ($1, $2, $3, $4, $5)`

	for _, l := range o.Lines() {
		if _, err := tx.Exec(ctx, line, id, l.PropertyID, l.Size, l.Quantity, l.UnitPriceCents); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order line", err, infra.ClassifyPgError(err))
		}
	}
	return id, nil
}

func (r *OrderRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, status order.PaymentStatus) error {
	const q = `UPDATE orders SET payment_status = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to set payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM orders WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
