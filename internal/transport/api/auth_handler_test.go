package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/logger"
	"github.com/rphmota/fin-api/internal/service"
	"github.com/rphmota/fin-api/internal/service/tokens"
	"github.com/rphmota/fin-api/internal/transport/api/mocks"
	"github.com/rphmota/fin-api/internal/transport/api/testutils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	mockUserService *mocks.MockUserServicer
	router          *gin.Engine
	jwtSecret       []byte
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func decodeBody(s *suite.Suite, res *http.Response) map[string]any {
	defer func() { _ = res.Body.Close() }()
	var body map[string]any
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	return body
}

func (s *AuthHandlerTestSuite) TestRegister() {
	argsOk := service.RegisterUserArgs{Name: "Raphael", Email: "raphael@gmail.com", Password: "123456"}
	argsDup := service.RegisterUserArgs{Name: "Raphael", Email: "taken@gmail.com", Password: "123456"}

	createdUser := domain.User{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      argsOk.Name,
		Email:     argsOk.Email,
		Password:  "hash",
	}

	s.mockUserService.EXPECT().Register(gomock.Any(), argsOk).Return(&createdUser, nil)
	s.mockUserService.EXPECT().Register(gomock.Any(), argsDup).Return(nil, domain.ErrDuplicateKey)

	var cases = []struct {
		name        string
		args        *UserRegisterParams
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "user created",
			args:       &UserRegisterParams{Name: argsOk.Name, Email: argsOk.Email, Password: argsOk.Password},
			wantStatus: http.StatusCreated,
		}, {
			name:        "duplicate email",
			args:        &UserRegisterParams{Name: argsDup.Name, Email: argsDup.Email, Password: argsDup.Password},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User already exists",
		}, {
			name:       "bad request",
			args:       nil,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "invalid email",
			args:       &UserRegisterParams{Name: "Raphael", Email: "not-an-email", Password: "123456"},
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "short password",
			args:       &UserRegisterParams{Name: "Raphael", Email: "raphael@gmail.com", Password: "123"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var payload []byte
			if t.args != nil {
				payload, _ = json.Marshal(t.args)
			}

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + UsersRoute,
				Body:   bytes.NewReader(payload),
			})

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			body := decodeBody(&s.Suite, res)
			if t.wantStatus == http.StatusCreated {
				s.Equal(createdUser.ID.String(), body["id"])
				s.Equal(createdUser.Email, body["email"])
				// хеш пароля наружу не отдается.
				s.NotContains(body, "password")
			}
			if t.wantMessage != "" {
				s.Equal(t.wantMessage, body["message"])
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	argsOk := service.LoginUserArgs{Email: "raphael@gmail.com", Password: "123456"}
	argsWrong := service.LoginUserArgs{Email: "raphael@gmail.com", Password: "wrongpassword"}

	user := domain.User{
		ID:    uuid.New(),
		Name:  "Raphael",
		Email: argsOk.Email,
	}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), argsOk).
		Return(&user, "token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), argsWrong).
		Return(nil, "", domain.ErrIncorrectEmailOrPassword)

	cases := []struct {
		name        string
		args        *UserLoginParams
		wantStatus  int
		wantMessage string
		wantToken   bool
	}{
		{
			name:       "ok",
			args:       &UserLoginParams{Email: argsOk.Email, Password: argsOk.Password},
			wantStatus: http.StatusOK,
			wantToken:  true,
		}, {
			name:        "wrong password",
			args:        &UserLoginParams{Email: argsWrong.Email, Password: argsWrong.Password},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Incorrect email or password",
		}, {
			name:       "bad request",
			args:       nil,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var payload []byte
			if t.args != nil {
				payload, _ = json.Marshal(t.args)
			}

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + SessionsRoute,
				Body:   bytes.NewReader(payload),
			})
			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			body := decodeBody(&s.Suite, res)
			if t.wantToken {
				s.NotEmpty(body["token"])
			} else {
				s.NotContains(body, "token")
			}
			if t.wantMessage != "" {
				s.Equal(t.wantMessage, body["message"])
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestProfile() {
	user := domain.User{
		ID:    uuid.New(),
		Name:  "Raphael",
		Email: "rphmota@gmail.com",
	}

	jwtTokenStr, jwtErr := tokens.GenerateUserJWT(user.ID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)
	expiredTokenStr, expErr := tokens.GenerateUserJWT(user.ID, -time.Hour, s.jwtSecret)
	s.Require().NoError(expErr)

	s.mockUserService.EXPECT().GetProfile(gomock.Any(), user.ID).Return(&user, nil)

	cases := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "ok",
			authHeader: fmt.Sprintf("Bearer %s", jwtTokenStr),
			wantStatus: http.StatusOK,
		}, {
			name:        "missing token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "JWT token is missing!",
		}, {
			name:        "malformed token",
			authHeader:  "Bearer not.a.token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "JWT invalid token!",
		}, {
			name:        "expired token",
			authHeader:  fmt.Sprintf("Bearer %s", expiredTokenStr),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "JWT invalid token!",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var reqOpts []func(*testutils.RequestOptions)
			if t.authHeader != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", t.authHeader))
			}

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + ProfileRoute,
			}, reqOpts...)
			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			body := decodeBody(&s.Suite, res)
			if t.wantStatus == http.StatusOK {
				s.Equal(user.ID.String(), body["id"])
				s.Equal(user.Email, body["email"])
			}
			if t.wantMessage != "" {
				s.Equal(t.wantMessage, body["message"])
			}
		})
	}
}
