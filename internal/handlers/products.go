package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/repository"
)

type productCreateRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Stock    int     `json:"stock" binding:"gte=0"`
	Category string  `json:"category" binding:"required"`
	Barcode  string  `json:"barcode"`
	Image    string  `json:"image"`
}

type productUpdateRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Stock    *int     `json:"stock"`
	Category *string  `json:"category"`
	Barcode  *string  `json:"barcode"`
	Image    *string  `json:"image"`
}

type stockUpdateRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

func GetProducts(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, products.GetAll())
	}
}

func GetProduct(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		product := products.GetByID(c.Param("id"))
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func CreateProduct(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}

		product := products.Save(models.ProductDraft{
			Name:     name,
			Price:    req.Price,
			Stock:    req.Stock,
			Category: strings.TrimSpace(req.Category),
			Barcode:  strings.TrimSpace(req.Barcode),
			Image:    req.Image,
		})
		c.JSON(http.StatusCreated, product)
	}
}

func UpdateProduct(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if req.Price != nil && *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price must be zero or greater"})
			return
		}
		if req.Stock != nil && *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock must be zero or greater"})
			return
		}

		product := products.Update(c.Param("id"), models.ProductUpdate{
			Name:     req.Name,
			Price:    req.Price,
			Stock:    req.Stock,
			Category: req.Category,
			Barcode:  req.Barcode,
			Image:    req.Image,
		})
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// UpdateProductStock sets the stock level directly. The repository performs
// no sign check, matching the storage contract; the regular update endpoint
// is the place with form-level validation.
func UpdateProductStock(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req stockUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Stock == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "stock required"})
			return
		}

		if !products.UpdateStock(c.Param("id"), *req.Stock) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "stock updated"})
	}
}

func DeleteProduct(products *repository.ProductRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !products.Delete(c.Param("id")) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
