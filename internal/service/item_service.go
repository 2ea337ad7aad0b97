package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"storefront/api/internal/ids"
	"storefront/api/internal/models"
	"storefront/api/internal/repository"
)

const (
	defaultItemPageSize = 20
	maxItemPageSize     = 100
)

type ItemService struct {
	items ItemStore
	log   zerolog.Logger
}

func NewItemService(items ItemStore, log zerolog.Logger) *ItemService {
	return &ItemService{items: items, log: log}
}

type CreateItemInput struct {
	Title       string
	Description string
	Image       string
	LargeImage  string
	Price       int64
}

func (s *ItemService) Create(ctx context.Context, viewer *models.User, input CreateItemInput) (models.Item, error) {
	if viewer == nil {
		return models.Item{}, ErrNotAuthenticated
	}
	if input.Title == "" || input.Description == "" || input.Price < 0 {
		return models.Item{}, ErrMissingFields
	}

	item := models.Item{
		ID:          ids.New(),
		UserID:      viewer.ID,
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		LargeImage:  input.LargeImage,
		Price:       input.Price,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

type UpdateItemInput struct {
	Title       *string
	Description *string
	Price       *int64
}

func (s *ItemService) Update(ctx context.Context, viewer *models.User, id string, input UpdateItemInput) (models.Item, error) {
	if viewer == nil {
		return models.Item{}, ErrNotAuthenticated
	}

	item, err := s.items.Update(ctx, id, repository.ItemUpdate{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
	})
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, err
	}
	return item, nil
}

// Delete removes an item after the fetch-then-authorize check: the owner may
// always delete, anyone else needs ADMIN or ITEMDELETE.
func (s *ItemService) Delete(ctx context.Context, viewer *models.User, id string) (models.Item, error) {
	if viewer == nil {
		return models.Item{}, ErrNotAuthenticated
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, err
	}

	owns := item.UserID == viewer.ID
	if !owns && !viewer.HasAnyPermission(models.PermissionAdmin, models.PermissionItemDelete) {
		return models.Item{}, ErrForbidden
	}

	if err := s.items.Delete(ctx, id); err != nil {
		return models.Item{}, err
	}

	s.log.Info().
		Str("actor_id", viewer.ID).
		Str("item_id", id).
		Bool("owner", owns).
		Msg("item deleted")

	return item, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (models.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, err
	}
	return item, nil
}

func (s *ItemService) List(ctx context.Context, first int, skip int) ([]models.Item, error) {
	if first <= 0 {
		first = defaultItemPageSize
	}
	if first > maxItemPageSize {
		first = maxItemPageSize
	}
	if skip < 0 {
		skip = 0
	}
	return s.items.List(ctx, first, skip)
}
