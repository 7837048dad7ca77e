package models

import "time"

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	Barcode   string    `json:"barcode,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductDraft carries the caller-supplied fields of a new product.
// ID and timestamps are assigned by the repository on save.
type ProductDraft struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Barcode  string  `json:"barcode,omitempty"`
	Image    string  `json:"image,omitempty"`
}

// ProductUpdate is a partial update: nil fields are left unchanged.
type ProductUpdate struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category *string  `json:"category"`
	Barcode  *string  `json:"barcode"`
	Image    *string  `json:"image"`
}

// TopProduct pairs a catalog product with its quantity sold across all
// recorded transactions. Products never sold carry TotalSold = 0.
type TopProduct struct {
	Product
	TotalSold int `json:"totalSold"`
}
