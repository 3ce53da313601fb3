package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
	"github.com/rphmota/fin-api/internal/service/tokens"
	"github.com/rphmota/fin-api/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          psswd,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Name     string
	Email    string
	Password string
}

// Register создает юзера в базе данных. Пароль сохраняется только в виде bcrypt хеша. В случае занятого
// email возвращает ошибку domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %s", hashErr.Error())
	}
	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		var userErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Name:     args.Name,
			Email:    args.Email,
			Password: password,
		})
		return userErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("registering user: %w", txErr)
	}
	return user, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует юзера по паре email/пароль и выдает jwt token. Не найденный email и неверный
// пароль намеренно неразличимы: в обоих случаях возвращается одна и та же ошибка
// domain.ErrIncorrectEmailOrPassword.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, "", domain.ErrIncorrectEmailOrPassword
		}
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.Password) {
		return nil, "", domain.ErrIncorrectEmailOrPassword
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

// GetProfile возвращает юзера по его ID или ошибку domain.ErrUserNotFound.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, findErr := s.userRepo.FindUserByID(ctx, userID)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user profile: %w", findErr)
	}
	return user, nil
}
