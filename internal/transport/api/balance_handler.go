package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rphmota/fin-api/internal/domain"
)

type BalanceHandler struct {
	svs BalanceServicer
}

func NewBalanceHandler(svs BalanceServicer) *BalanceHandler {
	return &BalanceHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Statement []StatementResponse `json:"statement"`
	Balance   float64             `json:"balance"`
}

// Index GET RouteGroup + BalanceRoute. Возвращает все операции текущего юзера и производный баланс.
func (b *BalanceHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := b.svs.GetBalance(reqCtx, currentUserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = c.AbortWithError(http.StatusNotFound, errors.New("User not found")).
				SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	statements := make([]StatementResponse, len(balance.Statements))
	for i := range balance.Statements {
		statements[i] = newStatementResponse(&balance.Statements[i])
	}

	c.JSON(http.StatusOK, &BalanceResponse{
		Statement: statements,
		Balance:   balance.Balance.InexactFloat64(),
	})
}
