package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"storefront/api/internal/models"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository struct {
	db querier
}

func NewCartRepository(db querier) *CartRepository {
	return &CartRepository{db: db}
}

const cartColumns = `id, user_id, item_id, quantity, created_at, updated_at`

func scanCartItem(row pgx.Row) (models.CartItem, error) {
	var line models.CartItem
	if err := row.Scan(
		&line.ID,
		&line.UserID,
		&line.ItemID,
		&line.Quantity,
		&line.CreatedAt,
		&line.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CartItem{}, ErrCartItemNotFound
		}
		return models.CartItem{}, err
	}
	return line, nil
}

// AddOne increments the (user, item) cart line by one, creating it with
// quantity 1 when absent. The upsert keeps concurrent increments atomic.
func (r *CartRepository) AddOne(ctx context.Context, id string, userID string, itemID string) (models.CartItem, error) {
	const query = `
		INSERT INTO cart_items (
			id, user_id, item_id, quantity, created_at, updated_at
		) VALUES (
			$1, $2, $3, 1, NOW(), NOW()
		)
		ON CONFLICT (user_id, item_id)
		DO UPDATE SET
			quantity = cart_items.quantity + 1,
			updated_at = NOW()
		RETURNING ` + cartColumns

	return scanCartItem(r.db.QueryRow(ctx, query, id, userID, itemID))
}

func (r *CartRepository) GetByID(ctx context.Context, id string) (models.CartItem, error) {
	const query = `SELECT ` + cartColumns + ` FROM cart_items WHERE id = $1`
	return scanCartItem(r.db.QueryRow(ctx, query, id))
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) error {
	const query = `DELETE FROM cart_items WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	const query = `
		SELECT ` + cartColumns + `
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.CartItem
	for rows.Next() {
		line, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
