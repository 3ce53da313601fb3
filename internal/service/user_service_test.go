package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
	"github.com/rphmota/fin-api/internal/service/mocks"
	"github.com/rphmota/fin-api/internal/service/tokens"
	"github.com/rphmota/fin-api/pkg/uow"
	uowmocks "github.com/rphmota/fin-api/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUOW      *uowmocks.MockUOW
	mockTX       *uowmocks.MockTX
	mockUserRepo *mocks.MockUserRepository
	mockPsswd    *mocks.MockPasswordHasher
	jwtSecret    []byte
	userService  *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	// Инициализация сервиса.
	userService, servErr := NewUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.userService = userService
}

func (s *UserServiceTestSuite) TestRegister() {
	argsOk := RegisterUserArgs{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: "<PASSWORD>",
	}
	argsDuplicateEmail := RegisterUserArgs{
		Name:     gofakeit.Name(),
		Email:    "taken@example.com",
		Password: "<PASSWORD>",
	}

	validHashedPassword := "hashedPassword"

	createdUser := domain.User{
		ID:        uuid.New(),
		Name:      argsOk.Name,
		Email:     argsOk.Email,
		Password:  validHashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Мок транзакции uow.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).MinTimes(1)

	// Мок хеширования пароля.
	s.mockPsswd.EXPECT().HashPassword(argsOk.Password).Return(validHashedPassword, nil).Times(2)

	// Мок репозитория.
	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Name:     argsOk.Name,
			Email:    argsOk.Email,
			Password: validHashedPassword,
		})).
		Return(&createdUser, nil)

	s.mockUserRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Eq(repoargs.CreateUser{
			Name:     argsDuplicateEmail.Name,
			Email:    argsDuplicateEmail.Email,
			Password: validHashedPassword,
		})).
		Return(nil, domain.ErrDuplicateKey)

	// Мок uow.
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	cases := []struct {
		name     string
		args     RegisterUserArgs
		wantErr  error
		wantUser *domain.User
	}{
		{
			name:     "ok",
			args:     argsOk,
			wantUser: &createdUser,
		},
		{
			name:    "duplicate email",
			args:    RegisterUserArgs{Name: argsDuplicateEmail.Name, Email: argsDuplicateEmail.Email, Password: argsOk.Password},
			wantErr: domain.ErrDuplicateKey,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, err := s.userService.Register(context.Background(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantUser, user)
		})
	}
}

func (s *UserServiceTestSuite) TestLogin() {
	savedUserEmail := "test@example.com"
	// аргументы вызовов для кейсов ниже.
	argsOk := LoginUserArgs{
		Email:    savedUserEmail,
		Password: "<PASSWORD>",
	}
	argsWrongEmail := LoginUserArgs{
		Email:    "wrong@example.com",
		Password: "<PASSWORD>",
	}
	argsWrongPass := LoginUserArgs{
		Email:    savedUserEmail,
		Password: "wrong pass",
	}

	validHashPassword := "hash ok"

	savedUser := domain.User{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      gofakeit.Name(),
		Email:     savedUserEmail,
		Password:  validHashPassword,
	}

	// Мок для сравнения пароля.
	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	// Мок репозитория.
	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), savedUserEmail).
		Return(&savedUser, nil).Times(2)

	s.mockUserRepo.EXPECT().
		FindUserByEmail(gomock.Any(), argsWrongEmail.Email).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginUserArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		// несуществующий email и неверный пароль должны быть неразличимы.
		{name: "wrong email", args: argsWrongEmail, wantErr: domain.ErrIncorrectEmailOrPassword},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrIncorrectEmailOrPassword},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.userService.Login(context.Background(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotNil(user)
				s.Equal(savedUser.Email, user.Email)
				s.NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(token.Claims.(*tokens.UserClaims).UserID, savedUser.ID) //nolint:errcheck
			} else {
				s.Nil(user)
				s.Empty(tokenStr)
			}
		})
	}
}

func (s *UserServiceTestSuite) TestGetProfile() {
	savedUser := domain.User{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Password:  "hash",
	}
	unknownID := uuid.New()

	s.mockUserRepo.EXPECT().
		FindUserByID(gomock.Any(), savedUser.ID).
		Return(&savedUser, nil)
	s.mockUserRepo.EXPECT().
		FindUserByID(gomock.Any(), unknownID).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		userID  uuid.UUID
		wantErr error
	}{
		{name: "ok", userID: savedUser.ID},
		{name: "not found", userID: unknownID, wantErr: domain.ErrUserNotFound},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, err := s.userService.GetProfile(context.Background(), t.userID)
			s.Require().ErrorIs(err, t.wantErr)
			if t.wantErr == nil {
				s.Require().NotNil(user)
				s.Equal(savedUser.ID, user.ID)
			}
		})
	}
}
