package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
	"github.com/rphmota/fin-api/pkg/uow"
)

type BalanceService struct {
	userRepo UserRepository
	stRepo   StatementRepository
}

func NewBalanceService(u uow.UOW) (*BalanceService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	stRepo, stRepoErr := uow.GetRepositoryAs[StatementRepository](u, uow.RepositoryName(repoargs.StatementRepoName))
	if stRepoErr != nil {
		return nil, stRepoErr
	}
	return &BalanceService{
		userRepo: userRepo,
		stRepo:   stRepo,
	}, nil
}

type UserBalance struct {
	Statements []domain.Statement
	Balance    decimal.Decimal
}

// GetBalance возвращает все операции юзера в порядке создания и производный баланс
// (сумма депозитов минус сумма списаний). Баланс пересчитывается при каждом вызове.
func (b *BalanceService) GetBalance(ctx context.Context, userID uuid.UUID) (*UserBalance, error) {
	if _, findErr := b.userRepo.FindUserByID(ctx, userID); findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting balance: %w", findErr)
	}

	statements, stErr := b.stRepo.GetByUserID(ctx, userID)
	if stErr != nil {
		return nil, fmt.Errorf("getting balance: %w", stErr)
	}

	sum, sumErr := b.stRepo.GetUserBalance(ctx, userID)
	if sumErr != nil {
		return nil, fmt.Errorf("getting balance: %w", sumErr)
	}

	return &UserBalance{
		Statements: statements,
		Balance:    sum.Balance(),
	}, nil
}
