package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"backend/internal/database"
	"backend/internal/models"
	"backend/internal/repository"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.ProductRepo, *repository.TransactionRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := database.Connect(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("store open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	products := repository.NewProductRepo(store)
	transactions := repository.NewTransactionRepo(store, products)

	r := gin.New()
	// Stand-in for the auth guard: inject validated cashier claims.
	r.Use(func(c *gin.Context) {
		c.Set("claims", jwt.MapClaims{"sub": "kasir-1", "role": "kasir"})
	})
	r.POST("/transactions", CreateTransaction(transactions, products))
	r.GET("/transactions", GetTransactions(transactions))
	r.PUT("/products/:id", UpdateProduct(products))
	return r, products, transactions
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTransactionComputesTotalsAndDecrementsStock(t *testing.T) {
	r, products, _ := newTestRouter(t)

	widget := products.Save(models.ProductDraft{Name: "Widget", Price: 1000, Stock: 5, Category: "Tools"})

	w := postJSON(t, r, http.MethodPost, "/transactions", gin.H{
		"items":         []gin.H{{"productId": widget.ID, "quantity": 2}},
		"paymentMethod": "cash",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var txn models.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &txn); err != nil {
		t.Fatalf("response decode failed: %v", err)
	}
	if txn.Subtotal != 2000 || txn.Tax != 200 || txn.Total != 2200 {
		t.Fatalf("expected 2000/200/2200, got %v/%v/%v", txn.Subtotal, txn.Tax, txn.Total)
	}
	if txn.CashierID != "kasir-1" {
		t.Fatalf("expected the acting cashier to be stamped, got %q", txn.CashierID)
	}
	if len(txn.Items) != 1 || txn.Items[0].ProductName != "Widget" || txn.Items[0].Price != 1000 {
		t.Fatalf("expected a snapshot of the product on the item, got %+v", txn.Items)
	}

	if got := products.GetByID(widget.ID); got.Stock != 3 {
		t.Fatalf("expected stock 3 after the sale, got %d", got.Stock)
	}
}

func TestCreateTransactionRejectsInsufficientStock(t *testing.T) {
	r, products, transactions := newTestRouter(t)

	widget := products.Save(models.ProductDraft{Name: "Widget", Price: 1000, Stock: 1, Category: "Tools"})

	w := postJSON(t, r, http.MethodPost, "/transactions", gin.H{
		"items":         []gin.H{{"productId": widget.ID, "quantity": 5}},
		"paymentMethod": "cash",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if got := products.GetByID(widget.ID); got.Stock != 1 {
		t.Fatalf("expected stock to stay 1, got %d", got.Stock)
	}
	if len(transactions.GetAll()) != 0 {
		t.Fatal("expected no transaction to be recorded")
	}
}

func TestGetTransactionsAcceptsOpenEndedDateRange(t *testing.T) {
	r, products, transactions := newTestRouter(t)

	widget := products.Save(models.ProductDraft{Name: "Widget", Price: 1000, Stock: 5, Category: "Tools"})
	transactions.Save(models.TransactionDraft{
		Items:         []models.TransactionItem{{ProductID: widget.ID, ProductName: widget.Name, Quantity: 1, Price: 1000, Total: 1000}},
		Subtotal:      1000,
		Tax:           100,
		Total:         1100,
		PaymentMethod: "cash",
		CashierID:     "kasir-1",
	})
	today := time.Now().Format("2006-01-02")

	for _, path := range []string{"/transactions?start=" + today, "/transactions?end=" + today} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d: %s", path, w.Code, w.Body.String())
		}
		var got []models.Transaction
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("response decode failed: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 transaction for %s, got %d", path, len(got))
		}
	}
}

func TestGetTransactionsRejectsMalformedDate(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/transactions?start=yesterday", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed date, got %d", w.Code)
	}
}

func TestCreateTransactionRejectsInvalidPaymentMethod(t *testing.T) {
	r, products, _ := newTestRouter(t)

	widget := products.Save(models.ProductDraft{Name: "Widget", Price: 1000, Stock: 5, Category: "Tools"})

	w := postJSON(t, r, http.MethodPost, "/transactions", gin.H{
		"items":         []gin.H{{"productId": widget.ID, "quantity": 1}},
		"paymentMethod": "barter",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
