package commands

import (
	"context"
	"log/slog"

	"havenmart/internal/domain/cart"
	"havenmart/internal/domain/user"
	"havenmart/internal/infra"
	"havenmart/internal/pkg/errs"
	"havenmart/internal/pkg/jwt"
	"havenmart/internal/pkg/password"
	"havenmart/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrUserInactive         = errs.New("user account is inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*LoginResult, error)
	// Login merges the guest cart into the server-side cart on success.
	Login(ctx context.Context, credentials user.Credentials, guestCart cart.Lines) (*LoginResult, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	cartRepo   CartRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, cartRepo CartRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		cartRepo:   cartRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*LoginResult, error) {
	if params.Name == "" {
		return nil, errs.Mark(user.ErrEmptyName, errs.ErrDomainValidation)
	}

	credentials, err := user.NewCredentials(params.Email, params.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(credentials.Email(), hash, params.Name, user.RoleCustomer)

	if _, err := a.userRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Role())
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{
		Token: token,
		User: &queries.AuthorizedUserView{
			ID:       entity.ID(),
			Email:    entity.Email().Value(),
			Name:     entity.Name(),
			Role:     entity.Role().String(),
			IsActive: entity.IsActive(),
		},
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials, guestCart cart.Lines) (*LoginResult, error) {
	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	if err := a.userRepo.UpdateLastLogin(ctx, view.ID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if guest := cart.Normalize(guestCart); len(guest) > 0 {
		// Quantities are summed per (property, size); a failed merge
		// must not block the login itself.
		if err := a.cartRepo.MergeLines(ctx, view.ID, guest); err != nil {
			slog.Warn("failed to merge guest cart on login", "user_id", view.ID, "error", err.Error())
		}
	}

	return &LoginResult{Token: token, User: view}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.AuthorizedUserView, error) {
	view, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	return view, nil
}

func (a *authCommandsImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
