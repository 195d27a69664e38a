//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"havenmart/internal/domain/cart"
	"havenmart/internal/domain/user"
	"havenmart/internal/infra"
	"havenmart/internal/pkg/jwt"
	"havenmart/internal/pkg/password"
	"havenmart/internal/usecase/commands"
	"havenmart/tests/common/builder"
	commandsmock "havenmart/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	userRepo *commandsmock.UserRepository
	cartRepo *commandsmock.CartRepository
	cmds     commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.userRepo = new(commandsmock.UserRepository)
	s.cartRepo = new(commandsmock.CartRepository)
	s.cmds = commands.NewAuthCommands(s.userRepo, s.cartRepo, jwt.NewService("test-secret", time.Hour))
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestRegister() {
	params := commands.RegisterParams{
		Name:     "Test User",
		Email:    "new@example.com",
		Password: "password123",
	}

	s.Run("success: creates a customer and returns a token", func() {
		s.SetupTest()
		s.userRepo.On("Create", mock.Anything, mock.Anything).Return(uuid.New(), nil).Once()

		result, err := s.cmds.Register(context.Background(), params)

		s.NoError(err)
		s.NotEmpty(result.Token)
		s.Equal("customer", result.User.Role)
		s.Equal(params.Email, result.User.Email)
	})

	s.Run("error: duplicate email", func() {
		s.SetupTest()
		s.userRepo.On("Create", mock.Anything, mock.Anything).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)).Once()

		_, err := s.cmds.Register(context.Background(), params)

		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("error: weak password", func() {
		s.SetupTest()
		bad := params
		bad.Password = "short"

		_, err := s.cmds.Register(context.Background(), bad)

		s.ErrorIs(err, user.ErrPasswordTooWeak)
		s.userRepo.AssertNotCalled(s.T(), "Create")
	})
}

func (s *AuthCommandsTestSuite) TestLogin() {
	const plainPassword = "password123"

	credentials, err := user.NewCredentials("test@example.com", plainPassword)
	if err != nil {
		panic(err)
	}

	s.Run("success: returns a token and merges the guest cart", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().BuildReadModel()
		hash, hashErr := password.HashPassword(plainPassword)
		s.Require().NoError(hashErr)

		guest := cart.Lines{uuid.New(): {"standard": 2}}

		s.userRepo.On("FindByEmail", mock.Anything, credentials.Email()).Return(view, hash, nil)
		s.userRepo.On("UpdateLastLogin", mock.Anything, view.ID).Return(nil).Once()
		s.cartRepo.On("MergeLines", mock.Anything, view.ID, guest).Return(nil).Once()

		result, loginErr := s.cmds.Login(context.Background(), credentials, guest)

		s.NoError(loginErr)
		s.NotEmpty(result.Token)
		s.Equal(view, result.User)
		s.cartRepo.AssertExpectations(s.T())
	})

	s.Run("success: empty guest cart skips the merge", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().BuildReadModel()
		hash, hashErr := password.HashPassword(plainPassword)
		s.Require().NoError(hashErr)

		s.userRepo.On("FindByEmail", mock.Anything, credentials.Email()).Return(view, hash, nil)
		s.userRepo.On("UpdateLastLogin", mock.Anything, view.ID).Return(nil).Once()

		_, loginErr := s.cmds.Login(context.Background(), credentials, nil)

		s.NoError(loginErr)
		s.cartRepo.AssertNotCalled(s.T(), "MergeLines")
	})

	s.Run("error: wrong password", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().BuildReadModel()
		hash, hashErr := password.HashPassword("different-password")
		s.Require().NoError(hashErr)

		s.userRepo.On("FindByEmail", mock.Anything, credentials.Email()).Return(view, hash, nil)

		_, loginErr := s.cmds.Login(context.Background(), credentials, nil)

		s.ErrorIs(loginErr, commands.ErrInvalidCredentials)
	})

	s.Run("error: unknown email", func() {
		s.SetupTest()
		s.userRepo.On("FindByEmail", mock.Anything, credentials.Email()).
			Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))

		_, loginErr := s.cmds.Login(context.Background(), credentials, nil)

		s.ErrorIs(loginErr, commands.ErrInvalidCredentials)
	})

	s.Run("error: inactive account", func() {
		s.SetupTest()
		view := builder.NewUserBuilder().AsInactive().BuildReadModel()
		hash, hashErr := password.HashPassword(plainPassword)
		s.Require().NoError(hashErr)

		s.userRepo.On("FindByEmail", mock.Anything, credentials.Email()).Return(view, hash, nil)

		_, loginErr := s.cmds.Login(context.Background(), credentials, nil)

		s.ErrorIs(loginErr, commands.ErrUserInactive)
	})
}

func (s *AuthCommandsTestSuite) TestValidateToken() {
	s.Run("success: round-trips a generated token", func() {
		s.SetupTest()
		s.userRepo.On("Create", mock.Anything, mock.Anything).Return(uuid.New(), nil).Once()

		result, err := s.cmds.Register(context.Background(), commands.RegisterParams{
			Name:     "Test User",
			Email:    "roundtrip@example.com",
			Password: "password123",
		})
		s.Require().NoError(err)

		userID, role, err := s.cmds.ValidateToken(result.Token)

		s.NoError(err)
		s.Equal(result.User.ID, userID)
		s.Equal(user.RoleCustomer, role)
	})

	s.Run("error: garbage token", func() {
		s.SetupTest()

		_, _, err := s.cmds.ValidateToken("not-a-token")

		s.ErrorIs(err, commands.ErrTokenValidation)
	})
}
