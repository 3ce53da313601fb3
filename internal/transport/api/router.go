package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rphmota/fin-api/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api/v1"
	UsersRoute         = "/users"
	SessionsRoute      = "/sessions"
	ProfileRoute       = "/profile"
	DepositRoute       = "/statements/deposit"
	WithdrawRoute      = "/statements/withdraw"
	BalanceRoute       = "/statements/balance"
	StatementShowRoute = "/statements/:statement_id"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	UserService      UserServicer
	StatementService StatementServicer
	BalanceService   BalanceServicer
	JWTSecretKey     []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	statementsHandler := NewStatementsHandler(args.StatementService)
	balanceHandler := NewBalanceHandler(args.BalanceService)

	api := r.Group(RouteGroup)

	api.POST(UsersRoute, authHandler.Register)
	api.POST(SessionsRoute, authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(ProfileRoute, authHandler.Profile)

	api.POST(DepositRoute, statementsHandler.Deposit)
	api.POST(WithdrawRoute, statementsHandler.Withdraw)
	api.GET(BalanceRoute, balanceHandler.Index)
	api.GET(StatementShowRoute, statementsHandler.Show)
	return r
}
