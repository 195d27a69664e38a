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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindProfileByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	const q = `
		SELECT id, email, name, role, last_login, created_at
		FROM users
		WHERE id = $1`

	var (
		view      queries.ProfileView
		lastLogin pgtype.Timestamptz
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &lastLogin, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user profile", err)
	}
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &view, nil
}
