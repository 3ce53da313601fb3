package pgrepo

import (
	"context"

	"github.com/google/uuid"

	"github.com/rphmota/fin-api/internal/domain"
	"github.com/rphmota/fin-api/internal/repository/repoargs"
	"github.com/rphmota/fin-api/pkg/uow"
)

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const createUserQuery = `
INSERT INTO users (name, email, encrypted_password)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at, name, email, encrypted_password`

// CreateUser создает юзера в базе данных. В случае конфликта email возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, createUserQuery, args.Name, args.Email, args.Password)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

const findUserByEmailQuery = `
SELECT id, created_at, updated_at, name, email, encrypted_password
FROM users
WHERE email = $1`

// FindUserByEmail ищет юзера по email. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, findUserByEmailQuery, email)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

const findUserByIDQuery = `
SELECT id, created_at, updated_at, name, email, encrypted_password
FROM users
WHERE id = $1`

// FindUserByID ищет юзера по его ID. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row := u.db.QueryRow(ctx, findUserByIDQuery, id)

	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %s", id)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Name,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
