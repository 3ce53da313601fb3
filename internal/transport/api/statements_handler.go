package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/service"
)

type StatementsHandler struct {
	svs StatementServicer
}

func NewStatementsHandler(svs StatementServicer) *StatementsHandler {
	return &StatementsHandler{
		svs: svs,
	}
}

type StatementParams struct {
	Amount      decimal.Decimal `binding:"required"        json:"amount"`
	Description string          `binding:"required,max=255" json:"description"`
}

type StatementResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newStatementResponse(statement *domain.Statement) StatementResponse {
	return StatementResponse{
		ID:          statement.ID,
		UserID:      statement.UserID,
		Type:        string(statement.Type),
		Amount:      statement.Amount.InexactFloat64(),
		Description: statement.Description,
		CreatedAt:   statement.CreatedAt,
		UpdatedAt:   statement.UpdatedAt,
	}
}

// Deposit POST RouteGroup + DepositRoute. Пополнение баланса текущего юзера.
func (h *StatementsHandler) Deposit(c *gin.Context) {
	h.createStatement(c, domain.OperationDeposit)
}

// Withdraw POST RouteGroup + WithdrawRoute. Списание с баланса текущего юзера. Списание сверх текущего
// баланса отклоняется, запись при этом не создается.
func (h *StatementsHandler) Withdraw(c *gin.Context) {
	h.createStatement(c, domain.OperationWithdraw)
}

func (h *StatementsHandler) createStatement(c *gin.Context, opType domain.OperationType) {
	currentUserID := getUserIDFromContext(c)

	var params StatementParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	statement, err := h.svs.Create(ctx, service.CreateStatementArgs{
		UserID:      currentUserID,
		Type:        opType,
		Amount:      params.Amount,
		Description: params.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("User not found")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrInsufficientFunds):
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("Insufficient funds")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrInvalidAmount):
			_ = c.AbortWithError(http.StatusBadRequest, errors.New("Amount must be positive")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusCreated, newStatementResponse(statement))
}

// Show GET RouteGroup + StatementShowRoute. Возвращает операцию текущего юзера по ее ID.
// Операция другого юзера неотличима от несуществующей.
func (h *StatementsHandler) Show(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	statementID, parseErr := uuid.Parse(c.Param("statement_id"))
	if parseErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, parseErr).SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	statement, err := h.svs.GetStatement(ctx, currentUserID, statementID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("User not found")).
				SetType(gin.ErrorTypePublic)
		case errors.Is(err, domain.ErrStatementNotFound):
			_ = c.AbortWithError(http.StatusNotFound, errors.New("Statement not found")).
				SetType(gin.ErrorTypePublic)
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, newStatementResponse(statement))
}
