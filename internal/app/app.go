package app

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/rphmota/fin-api/internal/config"
	"github.com/rphmota/fin-api/internal/repository/pgrepo"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
	"github.com/rphmota/fin-api/internal/service"
	"github.com/rphmota/fin-api/internal/transport/api"
	"github.com/rphmota/fin-api/pkg/uow"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return errors.Wrap(connErr, "app run")
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return errors.Wrap(uowErr, "app run")
	}

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTSecret))
	if sErr != nil {
		return errors.Wrap(sErr, "app run")
	}

	router := api.New(api.RouterArgs{
		Logger:           a.Logger,
		UserService:      services.UserService,
		StatementService: services.StatementService,
		BalanceService:   services.BalanceService,
		JWTSecretKey:     []byte(a.Config.JWTSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, errors.Wrap(regErr, "init UOW")
	}

	// statement repo
	statementRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewStatementRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.StatementRepoName),
		statementRepoFactoryFn,
	); regErr != nil {
		return nil, errors.Wrap(regErr, "init UOW")
	}

	return unitOfWork, nil
}
