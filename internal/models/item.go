package models

import "time"

type Item struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Image       string
	LargeImage  string
	// Price is stored in cents.
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartItem struct {
	ID        string
	UserID    string
	ItemID    string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
