package repository

import (
	"time"

	"github.com/google/uuid"

	"backend/internal/database"
	"backend/internal/models"
)

const dayFormat = "2006-01-02"

// TransactionRepo owns the append-only transaction log. Recording a sale is
// the sole trigger that decrements product stock.
type TransactionRepo struct {
	store    *database.Store
	products *ProductRepo
}

func NewTransactionRepo(store *database.Store, products *ProductRepo) *TransactionRepo {
	return &TransactionRepo{store: store, products: products}
}

// GetAll returns the log oldest first. Callers needing recency order sort
// themselves.
func (r *TransactionRepo) GetAll() []models.Transaction {
	transactions := []models.Transaction{}
	r.store.Read(database.KeyTransactions, &transactions)
	return transactions
}

// Save appends the transaction and then decrements stock for each item in
// order. The cascade is best effort: an item whose product no longer exists
// is skipped, the transaction record is never rolled back, and there is no
// atomicity between the log write and the per-product stock writes.
func (r *TransactionRepo) Save(draft models.TransactionDraft) models.Transaction {
	transactions := r.GetAll()
	txn := models.Transaction{
		ID:            uuid.NewString(),
		Items:         draft.Items,
		Subtotal:      draft.Subtotal,
		Tax:           draft.Tax,
		Total:         draft.Total,
		PaymentMethod: draft.PaymentMethod,
		CustomerID:    draft.CustomerID,
		CashierID:     draft.CashierID,
		CreatedAt:     time.Now(),
	}
	transactions = append(transactions, txn)
	r.store.Write(database.KeyTransactions, transactions)

	for _, item := range txn.Items {
		product := r.products.GetByID(item.ProductID)
		if product == nil {
			continue
		}
		r.products.UpdateStock(item.ProductID, product.Stock-item.Quantity)
	}

	return txn
}

// GetByDateRange filters on the calendar-day portion of CreatedAt,
// inclusive on both ends. Days compare as ISO date strings, which sort
// lexicographically in calendar order.
func (r *TransactionRepo) GetByDateRange(startDate, endDate string) []models.Transaction {
	matched := []models.Transaction{}
	for _, t := range r.GetAll() {
		day := t.CreatedAt.Format(dayFormat)
		if day >= startDate && day <= endDate {
			matched = append(matched, t)
		}
	}
	return matched
}

func (r *TransactionRepo) GetTodaysTransactions() []models.Transaction {
	today := time.Now().Format(dayFormat)
	return r.GetByDateRange(today, today)
}
