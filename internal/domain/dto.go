package domain

type OperationType string

const (
	OperationDeposit  OperationType = "deposit"
	OperationWithdraw OperationType = "withdraw"
)

// Valid проверяет, что тип операции один из известных.
func (t OperationType) Valid() bool {
	return t == OperationDeposit || t == OperationWithdraw
}
