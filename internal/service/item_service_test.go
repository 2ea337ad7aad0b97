package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/api/internal/models"
)

func TestCreateItem(t *testing.T) {
	items := newFakeItemStore()
	svc := NewItemService(items, zerolog.Nop())
	viewer := &models.User{ID: "user-1"}

	_, err := svc.Create(context.Background(), nil, CreateItemInput{Title: "Shoes", Description: "Nice", Price: 4500})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Create(context.Background(), viewer, CreateItemInput{Description: "no title", Price: 100})
	assert.ErrorIs(t, err, ErrMissingFields)

	item, err := svc.Create(context.Background(), viewer, CreateItemInput{Title: "Shoes", Description: "Nice", Price: 4500})
	require.NoError(t, err)
	assert.Equal(t, "user-1", item.UserID)
	assert.NotEmpty(t, item.ID)

	stored, err := svc.Get(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item, stored)
}

func TestUpdateItem(t *testing.T) {
	items := newFakeItemStore(models.Item{ID: "item-1", UserID: "user-1", Title: "Shoes", Price: 4500})
	svc := NewItemService(items, zerolog.Nop())
	viewer := &models.User{ID: "user-1"}

	_, err := svc.Update(context.Background(), nil, "item-1", UpdateItemInput{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = svc.Update(context.Background(), viewer, "ghost", UpdateItemInput{})
	assert.ErrorIs(t, err, ErrItemNotFound)

	title := "Boots"
	price := int64(5500)
	updated, err := svc.Update(context.Background(), viewer, "item-1", UpdateItemInput{Title: &title, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Boots", updated.Title)
	assert.Equal(t, int64(5500), updated.Price)
}

func TestDeleteItemAuthorization(t *testing.T) {
	owner := &models.User{ID: "owner-1", Permissions: []models.Permission{models.PermissionUser}}
	admin := &models.User{ID: "admin-1", Permissions: []models.Permission{models.PermissionAdmin}}
	deleter := &models.User{ID: "deleter-1", Permissions: []models.Permission{models.PermissionItemDelete}}
	bystander := &models.User{ID: "bystander-1", Permissions: []models.Permission{models.PermissionUser}}

	tests := []struct {
		name    string
		viewer  *models.User
		wantErr error
	}{
		{name: "anonymous", viewer: nil, wantErr: ErrNotAuthenticated},
		{name: "bystander forbidden", viewer: bystander, wantErr: ErrForbidden},
		{name: "owner may delete", viewer: owner},
		{name: "admin may delete", viewer: admin},
		{name: "itemdelete may delete", viewer: deleter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newFakeItemStore(models.Item{ID: "item-1", UserID: "owner-1", Title: "Shoes"})
			svc := NewItemService(items, zerolog.Nop())

			deleted, err := svc.Delete(context.Background(), tt.viewer, "item-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, getErr := svc.Get(context.Background(), "item-1")
				assert.NoError(t, getErr, "denied delete must not mutate")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "item-1", deleted.ID)
			_, getErr := svc.Get(context.Background(), "item-1")
			assert.ErrorIs(t, getErr, ErrItemNotFound)
		})
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	svc := NewItemService(newFakeItemStore(), zerolog.Nop())
	viewer := &models.User{ID: "user-1"}

	_, err := svc.Delete(context.Background(), viewer, "ghost")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestListItemsClampsPaging(t *testing.T) {
	items := newFakeItemStore(
		models.Item{ID: "a"}, models.Item{ID: "b"}, models.Item{ID: "c"},
	)
	svc := NewItemService(items, zerolog.Nop())

	listed, err := svc.List(context.Background(), -5, -5)
	require.NoError(t, err)
	assert.Len(t, listed, 3)

	listed, err = svc.List(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
