package models

// DailySales is a derived aggregate, one record per calendar day. It is
// rebuilt from the transaction log on every request and never persisted.
type DailySales struct {
	Date              string  `json:"date"`
	TotalSales        float64 `json:"totalSales"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalItems        int     `json:"totalItems"`
}
