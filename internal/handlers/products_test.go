package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
)

func TestUpdateProductPartialMerge(t *testing.T) {
	r, products, _ := newTestRouter(t)

	widget := products.Save(models.ProductDraft{Name: "Widget", Price: 1000, Stock: 5, Category: "Tools"})

	w := postJSON(t, r, http.MethodPut, "/products/"+widget.ID, gin.H{"price": 1500})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	got := products.GetByID(widget.ID)
	if got.Price != 1500 {
		t.Fatalf("expected price 1500, got %v", got.Price)
	}
	if got.Name != "Widget" || got.Stock != 5 {
		t.Fatal("expected unrelated fields to be untouched")
	}
}

func TestUpdateProductRejectsNegativeStock(t *testing.T) {
	r, products, _ := newTestRouter(t)

	widget := products.Save(models.ProductDraft{Name: "Widget", Price: 1000, Stock: 5, Category: "Tools"})

	w := postJSON(t, r, http.MethodPut, "/products/"+widget.ID, gin.H{"stock": -1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if got := products.GetByID(widget.ID); got.Stock != 5 {
		t.Fatalf("expected stock to stay 5, got %d", got.Stock)
	}
}
