package postgres

import (
	"context"
	"time"

	"stayfinder/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewUserRepository(pool *pgxpool.Pool, timeout time.Duration) *UserRepository {
	return &UserRepository{pool: pool, timeout: timeout}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, insertUserSQL,
		u.ID(), u.Username(), u.Email(), u.PasswordHash(),
		u.FullName(), u.PhoneNumber(), u.IsAdmin())
	if err != nil {
		return mapPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.findOne(ctx, getUserByIDSQL, id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, getUserByEmailSQL, email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, getUserByUsernameSQL, username)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	u, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, mapPgErr("failed to find user", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id           uuid.UUID
		username     string
		email        string
		passwordHash string
		fullName     *string
		phoneNumber  *string
		isAdmin      bool
	)
	if err := row.Scan(&id, &username, &email, &passwordHash, &fullName, &phoneNumber, &isAdmin); err != nil {
		return nil, err
	}
	return user.Reconstruct(id, username, email, passwordHash, fullName, phoneNumber, isAdmin), nil
}
