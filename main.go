package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/logger"
	"backend/internal/middleware"
	"backend/internal/report"
	"backend/internal/repository"
)

func main() {
	config.Load()
	logger.Init()
	defer zap.L().Sync()

	store, err := database.Connect(config.AppEnv.DBPath)
	if err != nil {
		zap.S().Fatalw("store open failed", "path", config.AppEnv.DBPath, "error", err)
	}
	defer store.Close()

	products := repository.NewProductRepo(store)
	transactions := repository.NewTransactionRepo(store, products)
	customers := repository.NewCustomerRepo(store)
	analytics := repository.NewAnalytics(transactions, products)

	repository.InitializeSampleData(products)

	mailer := report.NewMailer(analytics, config.AppEnv)
	s := gocron.NewScheduler(time.Local)
	s.Every(1).Day().At("23:55").Do(mailer.SendClosingSummary)
	s.StartAsync()

	r := gin.Default()

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppEnv.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	secret := config.AppEnv.JWTSecret
	staff := middleware.StaffAuth(secret)
	adminOnly := middleware.AdminAuth(secret)

	r.POST("/auth/login", handlers.Login(secret, config.AppEnv.AccessTokenTTL))
	r.GET("/auth/me", staff, handlers.GetMe())

	r.GET("/products", handlers.GetProducts(products))
	r.GET("/products/:id", handlers.GetProduct(products))
	r.POST("/products", adminOnly, handlers.CreateProduct(products))
	r.PUT("/products/:id", adminOnly, handlers.UpdateProduct(products))
	r.PUT("/products/:id/stock", adminOnly, handlers.UpdateProductStock(products))
	r.DELETE("/products/:id", adminOnly, handlers.DeleteProduct(products))

	r.GET("/transactions", staff, handlers.GetTransactions(transactions))
	r.POST("/transactions", staff, handlers.CreateTransaction(transactions, products))

	r.GET("/customers", staff, handlers.GetCustomers(customers))
	r.POST("/customers", adminOnly, handlers.CreateCustomer(customers))
	r.PUT("/customers/:id", adminOnly, handlers.UpdateCustomer(customers))
	r.DELETE("/customers/:id", adminOnly, handlers.DeleteCustomer(customers))

	r.GET("/reports/daily-sales", staff, handlers.GetDailySales(analytics))
	r.GET("/reports/top-products", staff, handlers.GetTopProducts(analytics))
	r.GET("/reports/revenue", staff, handlers.GetRevenue(analytics))

	r.Run(":" + config.AppEnv.Port)
}
