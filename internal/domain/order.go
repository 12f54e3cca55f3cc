package domain

import "time"

// OrderItem references a catalog product by its store-assigned id.
type OrderItem struct {
	ProductID string
	Quantity  int64
}

// Order is an immutable purchase record. Items keep their submitted order for
// display; the ordering carries no correctness meaning.
type Order struct {
	ID        string
	UserID    string
	Items     []OrderItem
	CreatedAt time.Time
}
