package domain

import "time"

// Product is a catalog entry. The ID is assigned by the store on insert and is
// immutable; products are never updated or deleted.
type Product struct {
	ID   string
	Name string
	Size string
	// Price is expressed in the smallest currency unit.
	Price     int64
	CreatedAt time.Time
}

// ProductFilter narrows a product listing. Empty fields apply no filter.
type ProductFilter struct {
	// Name matches products whose name contains the term, case-insensitively.
	Name string
	// Size is an exact match.
	Size string
}
