package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
	"github.com/rphmota/fin-api/internal/service/mocks"
	"github.com/rphmota/fin-api/pkg/uow"
	uowmocks "github.com/rphmota/fin-api/pkg/uow/mocks"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockUserRepo *mocks.MockUserRepository
	mockStRepo   *mocks.MockStatementRepository
	service      *BalanceService
}

func TestBalanceServiceSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}

func (s *BalanceServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockStRepo = mocks.NewMockStatementRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.StatementRepoName)).
		Return(s.mockStRepo, nil).AnyTimes()

	var err error
	s.service, err = NewBalanceService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *BalanceServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BalanceServiceTestSuite) TestGetBalance() {
	user := domain.User{
		ID:    uuid.New(),
		Name:  "Raphael",
		Email: "rphmota@gmail.com",
	}

	statements := []domain.Statement{
		{
			ID:          uuid.New(),
			CreatedAt:   time.Now().Add(-2 * time.Minute),
			UserID:      user.ID,
			Type:        domain.OperationDeposit,
			Amount:      decimal.NewFromInt(535),
			Description: "MONEY",
		},
		{
			ID:          uuid.New(),
			CreatedAt:   time.Now().Add(-time.Minute),
			UserID:      user.ID,
			Type:        domain.OperationWithdraw,
			Amount:      decimal.NewFromInt(35),
			Description: "BYE MONEY",
		},
	}

	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), user.ID).Return(&user, nil)
	s.mockStRepo.EXPECT().GetByUserID(gomock.Any(), user.ID).Return(statements, nil)
	s.mockStRepo.EXPECT().GetUserBalance(gomock.Any(), user.ID).Return(&repoargs.BalanceAggregation{
		DepositAmount:  decimal.NewFromInt(535),
		WithdrawAmount: decimal.NewFromInt(35),
	}, nil)

	balance, err := s.service.GetBalance(context.Background(), user.ID)
	s.Require().NoError(err)

	// баланс производный: сумма депозитов минус сумма списаний.
	s.True(decimal.NewFromInt(500).Equal(balance.Balance))
	// операции возвращаются в порядке создания.
	s.Require().Len(balance.Statements, 2)
	s.Equal(statements[0].ID, balance.Statements[0].ID)
	s.Equal(statements[1].ID, balance.Statements[1].ID)
}

func (s *BalanceServiceTestSuite) TestGetBalance_UserNotFound() {
	unknownID := uuid.New()
	s.mockUserRepo.EXPECT().FindUserByID(gomock.Any(), unknownID).Return(nil, domain.ErrRecordNotFound)

	balance, err := s.service.GetBalance(context.Background(), unknownID)
	s.Require().ErrorIs(err, domain.ErrUserNotFound)
	s.Nil(balance)
}
