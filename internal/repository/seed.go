package repository

import (
	"go.uber.org/zap"

	"backend/internal/models"
)

var sampleProducts = []models.ProductDraft{
	{Name: "Kopi Americano", Price: 25000, Stock: 50, Category: "Minuman"},
	{Name: "Nasi Goreng", Price: 35000, Stock: 30, Category: "Makanan"},
	{Name: "Es Teh Manis", Price: 12000, Stock: 100, Category: "Minuman"},
	{Name: "Ayam Bakar", Price: 45000, Stock: 20, Category: "Makanan"},
	{Name: "Jus Jeruk", Price: 18000, Stock: 40, Category: "Minuman"},
}

// InitializeSampleData seeds the catalog when it is empty. The emptiness
// check makes it a no-op on every later start; deleting the whole catalog
// brings the seed back on the next run.
func InitializeSampleData(products *ProductRepo) {
	if len(products.GetAll()) > 0 {
		return
	}
	for _, draft := range sampleProducts {
		products.Save(draft)
	}
	zap.S().Infow("seeded sample catalog", "products", len(sampleProducts))
}
