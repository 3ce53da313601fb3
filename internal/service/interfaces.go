package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type StatementRepository interface {
	CreateStatement(ctx context.Context, args repoargs.CreateStatement) (*domain.Statement, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Statement, error)
	FindByID(ctx context.Context, userID uuid.UUID, statementID uuid.UUID) (*domain.Statement, error)
	GetUserBalance(ctx context.Context, userID uuid.UUID) (*repoargs.BalanceAggregation, error)
}
