package repoargs

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rphmota/fin-api/internal/domain"
)

type CreateStatement struct {
	UserID      uuid.UUID
	Type        domain.OperationType
	Amount      decimal.Decimal
	Description string
}

// BalanceAggregation результат суммирования операций юзера с группировкой по типу.
type BalanceAggregation struct {
	DepositAmount  decimal.Decimal
	WithdrawAmount decimal.Decimal
}

// Balance возвращает производный баланс: сумма депозитов минус сумма списаний.
func (b BalanceAggregation) Balance() decimal.Decimal {
	return b.DepositAmount.Sub(b.WithdrawAmount)
}
