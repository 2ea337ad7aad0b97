package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"storefront/api/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db querier
}

func NewUserRepository(db querier) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, name, password_hash, permissions, reset_token, reset_token_expiry, created_at, updated_at`

func scanUser(row pgx.Row) (models.User, error) {
	var user models.User
	var permissions []string
	if err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&permissions,
		&user.ResetToken,
		&user.ResetTokenExpiry,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	user.Permissions = make([]models.Permission, 0, len(permissions))
	for _, p := range permissions {
		user.Permissions = append(user.Permissions, models.Permission(p))
	}
	return user, nil
}

func permissionStrings(perms []models.Permission) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		out = append(out, string(p))
	}
	return out
}

func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (
			id, email, name, password_hash, permissions, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, NOW(), NOW()
		)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		permissionStrings(user.Permissions),
	)
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// SetResetToken stores a fresh reset token pair on the user. Token and expiry
// are always written together.
func (r *UserRepository) SetResetToken(ctx context.Context, id string, token string, expiry time.Time) error {
	const query = `
		UPDATE users
		SET reset_token = $2, reset_token_expiry = $3, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.db.Exec(ctx, query, id, token, expiry)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindByResetToken returns the user holding a still-valid reset token.
func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE reset_token = $1 AND reset_token_expiry >= NOW()
	`
	return scanUser(r.db.QueryRow(ctx, query, token))
}

// UpdatePasswordAndClearReset writes the new password hash and clears the
// reset token pair in a single statement, so a consumed token cannot be
// replayed.
func (r *UserRepository) UpdatePasswordAndClearReset(ctx context.Context, id string, passwordHash []byte) error {
	const query = `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePermissions(ctx context.Context, id string, perms []models.Permission) error {
	const query = `
		UPDATE users
		SET permissions = $2, updated_at = NOW()
		WHERE id = $1
	`
	cmd, err := r.db.Exec(ctx, query, id, permissionStrings(perms))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PurgeExpiredResetTokens clears reset token pairs past their expiry. It is
// run from the maintenance scheduler.
func (r *UserRepository) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	const query = `
		UPDATE users
		SET reset_token = NULL, reset_token_expiry = NULL, updated_at = NOW()
		WHERE reset_token_expiry < NOW()
	`
	cmd, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
