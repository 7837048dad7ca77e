package models

import "time"

const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentDigital = "digital"
)

type TransactionItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Total       float64 `json:"total"`
}

// Transaction is immutable once recorded: the repository exposes no update
// or delete for it. ProductName and Price on each item are snapshots taken
// at sale time, not live references into the catalog.
type Transaction struct {
	ID            string            `json:"id"`
	Items         []TransactionItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomerID    string            `json:"customerId,omitempty"`
	CashierID     string            `json:"cashierId"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// TransactionDraft is a transaction before the repository assigns its
// identity. Subtotal, tax and total are computed by the caller; the
// repository records them as given.
type TransactionDraft struct {
	Items         []TransactionItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	CustomerID    string            `json:"customerId,omitempty"`
	CashierID     string            `json:"cashierId"`
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCard, PaymentDigital:
		return true
	}
	return false
}
