package repository

import (
	"context"

	"havenmart/internal/domain/catalog"
	"havenmart/internal/infra"
	"havenmart/internal/infra/db"
	"havenmart/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PropertyRepository struct {
	db db.DBTX
}

func NewPropertyRepository(db db.DBTX) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *catalog.Property) (uuid.UUID, error) {
	const q = `
		INSERT INTO properties (id, title, description, category, product, price_cents, location, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		p.ID(),
		p.Title(),
		p.Description(),
		p.Category().String(),
		p.Product(),
		p.PriceCents(),
		p.Location(),
		pgconv.StringPtrToPgtype(p.ImageURL()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create property", err, infra.ClassifyPgError(err))
	}
	return id, nil
}
