package readstore

import (
	"context"

	"havenmart/internal/infra"
	"havenmart/internal/infra/db"
	"havenmart/internal/pkg/pgconv"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	const q = `
		SELECT id, user_id, amount_cents, street, city, zip, country, phone, payment_method, payment_status, status, created_at
		FROM orders
		WHERE id = $1`

	var (
		view      queries.OrderView
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.UserID, &view.AmountCents,
		&view.Street, &view.City, &view.Zip, &view.Country, &view.Phone,
		&view.PaymentMethod, &view.PaymentStatus, &view.Status, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)

	lines, err := r.findLines(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	view.Lines = lines[id]
	if view.Lines == nil {
		view.Lines = []queries.OrderLineView{}
	}
	return &view, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	const q = `
		SELECT id, user_id, amount_cents, street, city, zip, country, phone, payment_method, payment_status, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	views := []*queries.OrderView{}
	ids := []uuid.UUID{}
	for rows.Next() {
		var (
			view      queries.OrderView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(
			&view.ID, &view.UserID, &view.AmountCents,
			&view.Street, &view.City, &view.Zip, &view.Country, &view.Phone,
			&view.PaymentMethod, &view.PaymentStatus, &view.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		view.Lines = []queries.OrderLineView{}
		views = append(views, &view)
		ids = append(ids, view.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	if len(ids) == 0 {
		return views, nil
	}

	linesByOrder, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, view := range views {
		if lines, ok := linesByOrder[view.ID]; ok {
			view.Lines = lines
		}
	}
	return views, nil
}

func (r *OrderReadStore) findLines(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]queries.OrderLineView, error) {
	const q = `
		SELECT order_id, property_id, size, quantity, unit_price_cents
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY property_id, size`

	rows, err := r.db.Query(ctx, q, orderIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order lines", err)
	}
	defer rows.Close()

	result := map[uuid.UUID][]queries.OrderLineView{}
	for rows.Next() {
		var (
			orderID uuid.UUID
			line    queries.OrderLineView
		)
		if err := rows.Scan(&orderID, &line.PropertyID, &line.Size, &line.Quantity, &line.UnitPriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		result[orderID] = append(result[orderID], line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}
	return result, nil
}
