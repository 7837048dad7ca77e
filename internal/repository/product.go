package repository

import (
	"time"

	"github.com/google/uuid"

	"backend/internal/database"
	"backend/internal/models"
)

// ProductRepo owns the persisted product collection. Every operation loads
// the full collection, mutates it in memory and writes it back; the
// collection keeps insertion order.
type ProductRepo struct {
	store *database.Store
}

func NewProductRepo(store *database.Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) GetAll() []models.Product {
	products := []models.Product{}
	r.store.Read(database.KeyProducts, &products)
	return products
}

func (r *ProductRepo) GetByID(id string) *models.Product {
	for _, p := range r.GetAll() {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

func (r *ProductRepo) Save(draft models.ProductDraft) models.Product {
	products := r.GetAll()
	now := time.Now()
	product := models.Product{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Price:     draft.Price,
		Stock:     draft.Stock,
		Category:  draft.Category,
		Barcode:   draft.Barcode,
		Image:     draft.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	products = append(products, product)
	r.store.Write(database.KeyProducts, products)
	return product
}

// Update merges the non-nil fields of upd onto the stored record and
// refreshes UpdatedAt. Returns nil when no record matches id.
func (r *ProductRepo) Update(id string, upd models.ProductUpdate) *models.Product {
	products := r.GetAll()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		if upd.Name != nil {
			products[i].Name = *upd.Name
		}
		if upd.Price != nil {
			products[i].Price = *upd.Price
		}
		if upd.Stock != nil {
			products[i].Stock = *upd.Stock
		}
		if upd.Category != nil {
			products[i].Category = *upd.Category
		}
		if upd.Barcode != nil {
			products[i].Barcode = *upd.Barcode
		}
		if upd.Image != nil {
			products[i].Image = *upd.Image
		}
		products[i].UpdatedAt = time.Now()
		r.store.Write(database.KeyProducts, products)
		return &products[i]
	}
	return nil
}

func (r *ProductRepo) Delete(id string) bool {
	products := r.GetAll()
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == len(products) {
		return false
	}
	r.store.Write(database.KeyProducts, filtered)
	return true
}

// UpdateStock sets the stock level outright. It performs no non-negativity
// check: callers own that invariant, and a sale against a stale stock count
// can drive the stored value below zero.
func (r *ProductRepo) UpdateStock(id string, newStock int) bool {
	return r.Update(id, models.ProductUpdate{Stock: &newStock}) != nil
}
