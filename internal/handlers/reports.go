package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/internal/repository"
)

func GetDailySales(analytics *repository.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := parsePositiveInt(c.Query("days"), 30)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
			return
		}
		c.JSON(http.StatusOK, analytics.GetDailySales(days))
	}
}

func GetTopProducts(analytics *repository.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := parsePositiveInt(c.Query("limit"), 10)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		c.JSON(http.StatusOK, analytics.GetTopProducts(limit))
	}
}

func GetRevenue(analytics *repository.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"total": analytics.GetTotalRevenue(),
			"today": analytics.GetTodaysRevenue(),
		})
	}
}

func parsePositiveInt(raw string, defaultValue int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, strconv.ErrRange
	}
	return value, nil
}
