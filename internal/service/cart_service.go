package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"storefront/api/internal/ids"
	"storefront/api/internal/models"
	"storefront/api/internal/repository"
)

type CartService struct {
	carts CartStore
	items ItemStore
	log   zerolog.Logger
}

func NewCartService(carts CartStore, items ItemStore, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, items: items, log: log}
}

// AddToCart increments the caller's line for the item, creating it with
// quantity 1 when absent. The increment happens in the store, not as a
// read-modify-write here.
func (s *CartService) AddToCart(ctx context.Context, viewer *models.User, itemID string) (models.CartItem, error) {
	if viewer == nil {
		return models.CartItem{}, ErrNotAuthenticated
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return models.CartItem{}, ErrItemNotFound
		}
		return models.CartItem{}, err
	}

	return s.carts.AddOne(ctx, ids.New(), viewer.ID, itemID)
}

// RemoveFromCart deletes a cart line; only its owner may remove it.
func (s *CartService) RemoveFromCart(ctx context.Context, viewer *models.User, cartItemID string) (models.CartItem, error) {
	if viewer == nil {
		return models.CartItem{}, ErrNotAuthenticated
	}

	line, err := s.carts.GetByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return models.CartItem{}, ErrCartItemNotFound
		}
		return models.CartItem{}, err
	}

	if line.UserID != viewer.ID {
		return models.CartItem{}, ErrForbidden
	}

	if err := s.carts.DeleteByID(ctx, cartItemID); err != nil {
		return models.CartItem{}, err
	}
	return line, nil
}

func (s *CartService) ItemsForUser(ctx context.Context, userID string) ([]models.CartItem, error) {
	return s.carts.ListByUser(ctx, userID)
}
