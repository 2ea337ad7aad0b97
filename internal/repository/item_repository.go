package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"storefront/api/internal/models"
)

var ErrItemNotFound = errors.New("item not found")

type ItemRepository struct {
	db querier
}

func NewItemRepository(db querier) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, user_id, title, description, image, large_image, price, created_at, updated_at`

func scanItem(row pgx.Row) (models.Item, error) {
	var item models.Item
	if err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.Description,
		&item.Image,
		&item.LargeImage,
		&item.Price,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, err
	}
	return item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item models.Item) error {
	const query = `
		INSERT INTO items (
			id, user_id, title, description, image, large_image, price, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.Title,
		item.Description,
		item.Image,
		item.LargeImage,
		item.Price,
	)
	return err
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (models.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return scanItem(r.db.QueryRow(ctx, query, id))
}

// ItemUpdate carries the mutable item fields; nil means keep the stored value.
type ItemUpdate struct {
	Title       *string
	Description *string
	Price       *int64
}

func (r *ItemRepository) Update(ctx context.Context, id string, updates ItemUpdate) (models.Item, error) {
	const query = `
		UPDATE items
		SET title = COALESCE($2, title),
		    description = COALESCE($3, description),
		    price = COALESCE($4, price),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + itemColumns

	return scanItem(r.db.QueryRow(ctx, query, id, updates.Title, updates.Description, updates.Price))
}

func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) List(ctx context.Context, limit int, offset int) ([]models.Item, error) {
	const query = `
		SELECT ` + itemColumns + `
		FROM items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
