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

type PropertyReadStore struct {
	db db.DBTX
}

func NewPropertyReadStore(db db.DBTX) *PropertyReadStore {
	return &PropertyReadStore{db: db}
}

func (r *PropertyReadStore) FindAll(ctx context.Context) ([]*queries.PropertyView, error) {
	const q = `
		SELECT id, title, description, category, product, price_cents, location, image_url, created_at
		FROM properties
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list properties", err)
	}
	defer rows.Close()

	views := []*queries.PropertyView{}
	for rows.Next() {
		view, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan property", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate properties", err)
	}
	return views, nil
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	const q = `
		SELECT id, title, description, category, product, price_cents, location, image_url, created_at
		FROM properties
		WHERE id = $1`

	view, err := scanProperty(r.db.QueryRow(ctx, q, id).Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get property by id", err)
	}
	return view, nil
}

func (r *PropertyReadStore) PricesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	const q = `SELECT id, price_cents FROM properties WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load property prices", err)
	}
	defer rows.Close()

	prices := map[uuid.UUID]int64{}
	for rows.Next() {
		var (
			id    uuid.UUID
			price int64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, infra.WrapRepoErr("failed to scan property price", err)
		}
		prices[id] = price
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate property prices", err)
	}
	return prices, nil
}

func scanProperty(scan func(dest ...any) error) (*queries.PropertyView, error) {
	var (
		view      queries.PropertyView
		imageURL  pgtype.Text
		createdAt pgtype.Timestamptz
	)
	if err := scan(
		&view.ID, &view.Title, &view.Description, &view.Category, &view.Product,
		&view.PriceCents, &view.Location, &imageURL, &createdAt,
	); err != nil {
		return nil, err
	}
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
