package pgrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
	"github.com/rphmota/fin-api/pkg/uow"
)

type StatementRepository struct {
	db uow.DBTX
}

func NewStatementRepository(db uow.DBTX) *StatementRepository {
	return &StatementRepository{db: db}
}

const createStatementQuery = `
INSERT INTO statements (user_id, operation_type, amount, description)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at, user_id, operation_type, amount, description`

func (s *StatementRepository) CreateStatement(
	ctx context.Context,
	args repoargs.CreateStatement,
) (*domain.Statement, error) {
	row := s.db.QueryRow(ctx, createStatementQuery, args.UserID, string(args.Type), args.Amount, args.Description)

	statement, err := scanStatement(row)
	if err != nil {
		return nil, convertErr(err, "creating statement")
	}
	return statement, nil
}

const getStatementsByUserIDQuery = `
SELECT id, created_at, updated_at, user_id, operation_type, amount, description
FROM statements
WHERE user_id = $1
ORDER BY created_at, id`

// GetByUserID возвращает все операции юзера в порядке их создания.
func (s *StatementRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Statement, error) {
	rows, err := s.db.Query(ctx, getStatementsByUserIDQuery, userID)
	if err != nil {
		return nil, convertErr(err, "getting statements by userID %s", userID)
	}
	defer rows.Close()

	var statements []domain.Statement
	for rows.Next() {
		statement, scanErr := scanStatement(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning statement row")
		}
		statements = append(statements, *statement)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting statements by userID %s", userID)
	}
	return statements, nil
}

const findStatementByIDQuery = `
SELECT id, created_at, updated_at, user_id, operation_type, amount, description
FROM statements
WHERE user_id = $1 AND id = $2`

// FindByID ищет операцию по ID в рамках одного юзера. Операция другого юзера с тем же ID
// считается отсутствующей (domain.ErrRecordNotFound).
func (s *StatementRepository) FindByID(
	ctx context.Context,
	userID uuid.UUID,
	statementID uuid.UUID,
) (*domain.Statement, error) {
	row := s.db.QueryRow(ctx, findStatementByIDQuery, userID, statementID)

	statement, err := scanStatement(row)
	if err != nil {
		return nil, convertErr(err, "finding statement by id %s", statementID)
	}
	return statement, nil
}

const sumStatementsByUserIDQuery = `
SELECT operation_type, COALESCE(SUM(amount), 0)
FROM statements
WHERE user_id = $1
GROUP BY operation_type`

// GetUserBalance суммирует операции юзера с группировкой по типу. Баланс нигде не хранится,
// он вычисляется этим запросом при каждом чтении.
func (s *StatementRepository) GetUserBalance(
	ctx context.Context,
	userID uuid.UUID,
) (*repoargs.BalanceAggregation, error) {
	rows, err := s.db.Query(ctx, sumStatementsByUserIDQuery, userID)
	if err != nil {
		return nil, convertErr(err, "getting balance sum by userID %s", userID)
	}
	defer rows.Close()

	var sum = new(repoargs.BalanceAggregation)
	for rows.Next() {
		var opType string
		var amount decimal.Decimal
		if scanErr := rows.Scan(&opType, &amount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning balance sum row")
		}
		if domain.OperationType(opType) == domain.OperationWithdraw {
			sum.WithdrawAmount = amount
		} else {
			sum.DepositAmount = amount
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting balance sum by userID %s", userID)
	}
	return sum, nil
}

func scanStatement(row rowScanner) (*domain.Statement, error) {
	var statement domain.Statement
	var opType string
	err := row.Scan(
		&statement.ID,
		&statement.CreatedAt,
		&statement.UpdatedAt,
		&statement.UserID,
		&opType,
		&statement.Amount,
		&statement.Description,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	statement.Type = domain.OperationType(opType)
	return &statement, nil
}
