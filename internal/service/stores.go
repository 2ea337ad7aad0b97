package service

import (
	"context"
	"time"

	"storefront/api/internal/models"
	"storefront/api/internal/repository"
)

// UserStore is the persistence collaborator for the auth flow, implemented
// by repository.UserRepository.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	SetResetToken(ctx context.Context, id string, token string, expiry time.Time) error
	FindByResetToken(ctx context.Context, token string) (models.User, error)
	UpdatePasswordAndClearReset(ctx context.Context, id string, passwordHash []byte) error
	UpdatePermissions(ctx context.Context, id string, perms []models.Permission) error
}

// ItemStore is implemented by repository.ItemRepository.
type ItemStore interface {
	Create(ctx context.Context, item models.Item) error
	GetByID(ctx context.Context, id string) (models.Item, error)
	Update(ctx context.Context, id string, updates repository.ItemUpdate) (models.Item, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int, offset int) ([]models.Item, error)
}

// CartStore is implemented by repository.CartRepository.
type CartStore interface {
	AddOne(ctx context.Context, id string, userID string, itemID string) (models.CartItem, error)
	GetByID(ctx context.Context, id string) (models.CartItem, error)
	DeleteByID(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]models.CartItem, error)
}
