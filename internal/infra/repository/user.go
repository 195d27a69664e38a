package repository

import (
	"context"

	"havenmart/internal/domain/user"
	"havenmart/internal/infra"
	"havenmart/internal/infra/db"
	"havenmart/internal/pkg/pgconv"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Name(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err, infra.ClassifyPgError(err))
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	const q = `
		SELECT id, email, name, role, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, q, email.Value()).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive, &hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `
		SELECT id, email, name, role, is_active
		FROM users
		WHERE id = $1`

	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Email, &view.Name, &view.Role, &view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &view, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const q = `UPDATE users SET last_login = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, q, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
