package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRepoMock(t *testing.T) (*CartRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return NewCartRepository(mock), mock
}

func cartRow(id string, quantity int) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "user_id", "item_id", "quantity", "created_at", "updated_at",
	}).AddRow(id, "user-1", "item-1", quantity, now, now)
}

func TestCartRepositoryAddOneUpserts(t *testing.T) {
	repo, mock := newCartRepoMock(t)

	// The increment lives in the statement itself, not in Go.
	mock.ExpectQuery(`ON CONFLICT \(user_id, item_id\)`).
		WithArgs("line-1", "user-1", "item-1").
		WillReturnRows(cartRow("line-0", 2))

	line, err := repo.AddOne(context.Background(), "line-1", "user-1", "item-1")
	require.NoError(t, err)
	assert.Equal(t, "line-0", line.ID, "existing line wins over the fresh id")
	assert.Equal(t, 2, line.Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepositoryDeleteByIDNotFound(t *testing.T) {
	repo, mock := newCartRepoMock(t)

	mock.ExpectExec(`DELETE FROM cart_items WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepositoryListByUser(t *testing.T) {
	repo, mock := newCartRepoMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "user_id", "item_id", "quantity", "created_at", "updated_at",
	}).
		AddRow("line-1", "user-1", "item-1", 2, now, now).
		AddRow("line-2", "user-1", "item-2", 1, now, now)

	mock.ExpectQuery(`SELECT .+ FROM cart_items`).
		WithArgs("user-1").
		WillReturnRows(rows)

	lines, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.NoError(t, mock.ExpectationsWereMet())
}
