package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type StatementServicer interface {
	Create(ctx context.Context, args service.CreateStatementArgs) (*domain.Statement, error)
	GetStatement(ctx context.Context, userID uuid.UUID, statementID uuid.UUID) (*domain.Statement, error)
}

type BalanceServicer interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*service.UserBalance, error)
}
