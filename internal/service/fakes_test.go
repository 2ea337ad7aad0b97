package service

import (
	"context"
	"time"

	"storefront/api/internal/models"
	"storefront/api/internal/repository"
)

// fakeUserStore is an in-memory UserStore for orchestrator tests. It mirrors
// the repository semantics, including the reset-token validity predicate.
type fakeUserStore struct {
	users          map[string]models.User
	passwordWrites int
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]models.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id string) (models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *fakeUserStore) SetResetToken(_ context.Context, id string, token string, expiry time.Time) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	s.users[id] = u
	return nil
}

func (s *fakeUserStore) FindByResetToken(_ context.Context, token string) (models.User, error) {
	now := time.Now()
	for _, u := range s.users {
		if u.ResetToken != nil && *u.ResetToken == token && u.ResetTokenExpiry != nil && !u.ResetTokenExpiry.Before(now) {
			return u, nil
		}
	}
	return models.User{}, repository.ErrUserNotFound
}

func (s *fakeUserStore) UpdatePasswordAndClearReset(_ context.Context, id string, passwordHash []byte) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	s.passwordWrites++
	u.PasswordHash = passwordHash
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
	s.users[id] = u
	return nil
}

func (s *fakeUserStore) UpdatePermissions(_ context.Context, id string, perms []models.Permission) error {
	u, ok := s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Permissions = perms
	s.users[id] = u
	return nil
}

type fakeItemStore struct {
	items map[string]models.Item
}

func newFakeItemStore(items ...models.Item) *fakeItemStore {
	s := &fakeItemStore{items: make(map[string]models.Item)}
	for _, item := range items {
		s.items[item.ID] = item
	}
	return s
}

func (s *fakeItemStore) Create(_ context.Context, item models.Item) error {
	s.items[item.ID] = item
	return nil
}

func (s *fakeItemStore) GetByID(_ context.Context, id string) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, repository.ErrItemNotFound
	}
	return item, nil
}

func (s *fakeItemStore) Update(_ context.Context, id string, updates repository.ItemUpdate) (models.Item, error) {
	item, ok := s.items[id]
	if !ok {
		return models.Item{}, repository.ErrItemNotFound
	}
	if updates.Title != nil {
		item.Title = *updates.Title
	}
	if updates.Description != nil {
		item.Description = *updates.Description
	}
	if updates.Price != nil {
		item.Price = *updates.Price
	}
	s.items[id] = item
	return item, nil
}

func (s *fakeItemStore) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *fakeItemStore) List(_ context.Context, limit int, offset int) ([]models.Item, error) {
	out := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// fakeCartStore reproduces the upsert increment of the SQL implementation.
type fakeCartStore struct {
	lines map[string]models.CartItem
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{lines: make(map[string]models.CartItem)}
}

func (s *fakeCartStore) AddOne(_ context.Context, id string, userID string, itemID string) (models.CartItem, error) {
	for key, line := range s.lines {
		if line.UserID == userID && line.ItemID == itemID {
			line.Quantity++
			s.lines[key] = line
			return line, nil
		}
	}
	line := models.CartItem{ID: id, UserID: userID, ItemID: itemID, Quantity: 1}
	s.lines[id] = line
	return line, nil
}

func (s *fakeCartStore) GetByID(_ context.Context, id string) (models.CartItem, error) {
	line, ok := s.lines[id]
	if !ok {
		return models.CartItem{}, repository.ErrCartItemNotFound
	}
	return line, nil
}

func (s *fakeCartStore) DeleteByID(_ context.Context, id string) error {
	if _, ok := s.lines[id]; !ok {
		return repository.ErrCartItemNotFound
	}
	delete(s.lines, id)
	return nil
}

func (s *fakeCartStore) ListByUser(_ context.Context, userID string) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, line := range s.lines {
		if line.UserID == userID {
			out = append(out, line)
		}
	}
	return out, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent []sentMail
	fail error
}

func (m *fakeMailer) Send(_ context.Context, to string, subject string, htmlBody string) error {
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
