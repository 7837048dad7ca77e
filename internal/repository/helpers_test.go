package repository

import (
	"path/filepath"
	"testing"

	"backend/internal/database"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Connect(filepath.Join(t.TempDir(), "pos.db"))
	if err != nil {
		t.Fatalf("store open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestRepos(t *testing.T) (*ProductRepo, *TransactionRepo, *CustomerRepo, *Analytics) {
	t.Helper()
	store := newTestStore(t)
	products := NewProductRepo(store)
	transactions := NewTransactionRepo(store, products)
	customers := NewCustomerRepo(store)
	analytics := NewAnalytics(transactions, products)
	return products, transactions, customers, analytics
}
