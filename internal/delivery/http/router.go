package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pedelocal/pedelocal-order-service/internal/delivery/http/handlers"
	"github.com/pedelocal/pedelocal-order-service/internal/delivery/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type RouterDeps struct {
	OrderHandler      *handlers.OrderHandler
	StoreHandler      *handlers.StoreHandler
	SettlementHandler *handlers.SettlementHandler
	CartHandler       *handlers.CartHandler
	JWTSecret         string
	DB                *gorm.DB
}

func BuildRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), cors.Default())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/readyz", func(c *gin.Context) {
		sqlDB, err := deps.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(503, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.Auth(deps.JWTSecret))

	api.GET("/stores", deps.StoreHandler.List)
	api.GET("/stores/:id", deps.StoreHandler.GetByID)
	api.PUT("/stores/:id/availability", deps.StoreHandler.SetManualOverride)
	api.PUT("/stores/:id/schedule", deps.StoreHandler.UpdateSchedule)
	api.GET("/stores/:id/orders", deps.OrderHandler.ListByStore)
	api.GET("/stores/:id/settlements", deps.SettlementHandler.ListByStore)

	api.GET("/orders/:id", deps.OrderHandler.GetByID)
	api.PATCH("/orders/:id/status", deps.OrderHandler.UpdateStatus)
	api.GET("/customers/:id/orders", deps.OrderHandler.ListByCustomer)

	api.GET("/cart", deps.CartHandler.Get)
	api.POST("/cart/items", deps.CartHandler.AddItem)
	api.PATCH("/cart/items/:productId", deps.CartHandler.UpdateQuantity)
	api.DELETE("/cart/items/:productId", deps.CartHandler.RemoveItem)
	api.POST("/cart/checkout", deps.CartHandler.Checkout)

	api.POST("/settlements", deps.SettlementHandler.Generate)
	api.PATCH("/settlements/:id/status", deps.SettlementHandler.Process)

	return router
}
