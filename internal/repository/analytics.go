package repository

import (
	"sort"
	"time"

	"backend/internal/models"
)

// Analytics derives report data by scanning the transaction and product
// repositories. It never writes.
type Analytics struct {
	transactions *TransactionRepo
	products     *ProductRepo
}

func NewAnalytics(transactions *TransactionRepo, products *ProductRepo) *Analytics {
	return &Analytics{transactions: transactions, products: products}
}

// GetDailySales returns exactly windowDays buckets, oldest first, covering
// the inclusive range [today-(windowDays-1), today]. Days without sales stay
// zero-filled; transactions outside the window are ignored.
func (a *Analytics) GetDailySales(windowDays int) []models.DailySales {
	if windowDays < 1 {
		windowDays = 1
	}

	sales := make([]models.DailySales, windowDays)
	buckets := make(map[string]*models.DailySales, windowDays)
	now := time.Now()
	for i := 0; i < windowDays; i++ {
		date := now.AddDate(0, 0, -(windowDays - 1 - i)).Format(dayFormat)
		sales[i] = models.DailySales{Date: date}
		buckets[date] = &sales[i]
	}

	for _, txn := range a.transactions.GetAll() {
		bucket, ok := buckets[txn.CreatedAt.Format(dayFormat)]
		if !ok {
			continue
		}
		bucket.TotalSales += txn.Total
		bucket.TotalTransactions++
		for _, item := range txn.Items {
			bucket.TotalItems += item.Quantity
		}
	}

	return sales
}

// GetTopProducts joins summed sale quantities against the full catalog and
// returns at most limit entries, descending by quantity sold. Never-sold
// products take part with TotalSold 0; ties keep catalog order.
func (a *Analytics) GetTopProducts(limit int) []models.TopProduct {
	sold := make(map[string]int)
	for _, txn := range a.transactions.GetAll() {
		for _, item := range txn.Items {
			sold[item.ProductID] += item.Quantity
		}
	}

	products := a.products.GetAll()
	top := make([]models.TopProduct, 0, len(products))
	for _, p := range products {
		top = append(top, models.TopProduct{Product: p, TotalSold: sold[p.ID]})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalSold > top[j].TotalSold
	})

	if limit >= 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}

func (a *Analytics) GetTotalRevenue() float64 {
	var total float64
	for _, txn := range a.transactions.GetAll() {
		total += txn.Total
	}
	return total
}

func (a *Analytics) GetTodaysRevenue() float64 {
	var total float64
	for _, txn := range a.transactions.GetTodaysTransactions() {
		total += txn.Total
	}
	return total
}
