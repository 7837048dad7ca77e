package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/repository"
)

// Tax policy: a flat 10% of the subtotal, computed here because the
// repository records totals as given.
const taxRate = 0.10

type transactionItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type transactionCreateRequest struct {
	Items         []transactionItemRequest `json:"items" binding:"required"`
	PaymentMethod string                   `json:"paymentMethod" binding:"required"`
	CustomerID    string                   `json:"customerId"`
}

func GetTransactions(transactions *repository.TransactionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Query("today"), "true") {
			c.JSON(http.StatusOK, transactions.GetTodaysTransactions())
			return
		}

		start := strings.TrimSpace(c.Query("start"))
		end := strings.TrimSpace(c.Query("end"))
		if start != "" || end != "" {
			if (start != "" && !validDate(start)) || (end != "" && !validDate(end)) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD"})
				return
			}
			// An omitted bound leaves that side of the range open.
			if start == "" {
				start = "0000-01-01"
			}
			if end == "" {
				end = "9999-12-31"
			}
			c.JSON(http.StatusOK, transactions.GetByDateRange(start, end))
			return
		}

		c.JSON(http.StatusOK, transactions.GetAll())
	}
}

// CreateTransaction rings up a sale: it snapshots the current product name
// and price into each line, computes subtotal, tax and total, stamps the
// acting cashier and hands the draft to the repository (which decrements
// stock as its side effect). Stock sufficiency is checked here, before the
// sale is recorded, because the repository itself never clamps.
func CreateTransaction(transactions *repository.TransactionRepo, products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req transactionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "at least one item is required"})
			return
		}
		if !models.ValidPaymentMethod(req.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
			return
		}

		cashierID := cashierIDFromContext(c)
		if cashierID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		items := make([]models.TransactionItem, 0, len(req.Items))
		var subtotal float64
		for _, item := range req.Items {
			if item.Quantity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be greater than zero"})
				return
			}

			product := products.GetByID(item.ProductID)
			if product == nil {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "product not found",
					"productId": item.ProductID,
				})
				return
			}
			if product.Stock < item.Quantity {
				c.JSON(http.StatusBadRequest, gin.H{
					"error":     "insufficient stock",
					"productId": product.ID,
					"available": product.Stock,
					"requested": item.Quantity,
				})
				return
			}

			lineTotal := product.Price * float64(item.Quantity)
			items = append(items, models.TransactionItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				Price:       product.Price,
				Total:       lineTotal,
			})
			subtotal += lineTotal
		}

		tax := subtotal * taxRate
		txn := transactions.Save(models.TransactionDraft{
			Items:         items,
			Subtotal:      subtotal,
			Tax:           tax,
			Total:         subtotal + tax,
			PaymentMethod: req.PaymentMethod,
			CustomerID:    strings.TrimSpace(req.CustomerID),
			CashierID:     cashierID,
		})

		c.JSON(http.StatusCreated, txn)
	}
}

func validDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
