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

type StatementService struct {
	uow      uow.UOW
	userRepo UserRepository
	stRepo   StatementRepository
}

func NewStatementService(u uow.UOW) (*StatementService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	stRepo, stRepoErr := uow.GetRepositoryAs[StatementRepository](u, uow.RepositoryName(repoargs.StatementRepoName))
	if stRepoErr != nil {
		return nil, stRepoErr
	}
	return &StatementService{
		uow:      u,
		userRepo: userRepo,
		stRepo:   stRepo,
	}, nil
}

type CreateStatementArgs struct {
	UserID      uuid.UUID
	Type        domain.OperationType
	Amount      decimal.Decimal
	Description string
}

// Create добавляет операцию (deposit/withdraw) юзеру. Проверка существования юзера, проверка баланса
// и вставка записи выполняются в одной транзакции с уровнем изоляции базы по умолчанию.
// Возвращает ошибки:
//   - domain.ErrUserNotFound, если юзера не существует;
//   - domain.ErrInsufficientFunds, если withdraw превышает текущий баланс;
//   - domain.ErrInvalidAmount, если сумма не положительная.
func (s *StatementService) Create(ctx context.Context, args CreateStatementArgs) (*domain.Statement, error) {
	if !args.Type.Valid() {
		return nil, fmt.Errorf("creating statement: unknown operation type %q", args.Type)
	}
	if !args.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	var statement *domain.Statement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		stRepo, stRepoErr := uow.GetAs[StatementRepository](tx, uow.RepositoryName(repoargs.StatementRepoName))
		if stRepoErr != nil {
			return stRepoErr //nolint:wrapcheck
		}

		if _, findErr := userRepo.FindUserByID(c, args.UserID); findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return findErr //nolint:wrapcheck
		}

		if args.Type == domain.OperationWithdraw {
			balance, balanceErr := stRepo.GetUserBalance(c, args.UserID)
			if balanceErr != nil {
				return balanceErr //nolint:wrapcheck
			}
			if args.Amount.GreaterThan(balance.Balance()) {
				return domain.ErrInsufficientFunds
			}
		}

		var createErr error
		statement, createErr = stRepo.CreateStatement(c, repoargs.CreateStatement{
			UserID:      args.UserID,
			Type:        args.Type,
			Amount:      args.Amount,
			Description: args.Description,
		})
		return createErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("creating statement: %w", txErr)
	}
	return statement, nil
}

// GetStatement возвращает операцию юзера по ее ID. Поиск ограничен рамками одного юзера: чужая операция
// с существующим ID вернет domain.ErrStatementNotFound.
func (s *StatementService) GetStatement(
	ctx context.Context,
	userID uuid.UUID,
	statementID uuid.UUID,
) (*domain.Statement, error) {
	if _, findErr := s.userRepo.FindUserByID(ctx, userID); findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting statement: %w", findErr)
	}

	statement, stErr := s.stRepo.FindByID(ctx, userID, statementID)
	if stErr != nil {
		if errors.Is(stErr, domain.ErrRecordNotFound) {
			return nil, domain.ErrStatementNotFound
		}
		return nil, fmt.Errorf("getting statement: %w", stErr)
	}
	return statement, nil
}
