package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intwaza/online-marketplace/internal/domain"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Stores   *StoreHandler
	Category *CategoryHandler
	Products *ProductHandler
	Orders   *OrderHandler
	Payments *PaymentHandler
	Reviews  *ReviewHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/verify-email/:token", h.Auth.VerifyEmail)
		auth.POST("/apply-seller", h.Auth.ApplySeller)
		auth.POST("/approve-seller/:email",
			JWTAuth(), RequireRole(domain.RoleAdmin), h.Auth.ApproveSeller)
	}

	users := api.Group("/users", JWTAuth())
	{
		users.GET("", RequireRole(domain.RoleAdmin), h.Users.List)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id", h.Users.Update)
		users.DELETE("/:id", RequireRole(domain.RoleAdmin), h.Users.Delete)
	}

	stores := api.Group("/stores")
	{
		stores.GET("", h.Stores.List)
		stores.GET("/:id", h.Stores.Get)
		stores.GET("/:id/products", h.Products.ByStore)
		stores.POST("", JWTAuth(), RequireRole(domain.RoleSeller), h.Stores.Create)
		stores.PUT("/:id", JWTAuth(), h.Stores.Update)
		stores.PUT("/:id/approve", JWTAuth(), RequireRole(domain.RoleAdmin), h.Stores.Approve)
		stores.DELETE("/:id", JWTAuth(), h.Stores.Delete)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", h.Category.List)
		categories.GET("/:id", h.Category.Get)
		categories.POST("", JWTAuth(), RequireRole(domain.RoleAdmin), h.Category.Create)
		categories.PUT("/:id", JWTAuth(), RequireRole(domain.RoleAdmin), h.Category.Update)
		categories.DELETE("/:id", JWTAuth(), RequireRole(domain.RoleAdmin), h.Category.Delete)
	}

	products := api.Group("/products")
	{
		products.GET("", h.Products.List)
		products.GET("/featured", h.Products.Featured)
		products.GET("/:id", h.Products.Get)
		products.POST("", JWTAuth(), RequireRole(domain.RoleSeller), h.Products.Create)
		products.PUT("/:id", JWTAuth(), h.Products.Update)
		products.POST("/:id/feature", JWTAuth(), RequireRole(domain.RoleAdmin), h.Products.Feature)
		products.PUT("/:id/stock", JWTAuth(), h.Products.UpdateStock)
		products.DELETE("/:id", JWTAuth(), h.Products.Delete)
	}

	orders := api.Group("/orders", JWTAuth())
	{
		orders.POST("", RequireRole(domain.RoleShopper), h.Orders.Create)
		orders.GET("/all", RequireRole(domain.RoleAdmin), h.Orders.ListAll)
		orders.GET("", h.Orders.ListMine)
		orders.GET("/store", RequireRole(domain.RoleSeller), h.Orders.ListStore)
		orders.GET("/:id", h.Orders.Get)
		orders.PUT("/:id/status", h.Orders.UpdateStatus)
		orders.DELETE("/:id", h.Orders.Delete)
	}

	payments := api.Group("/payments", JWTAuth())
	{
		payments.POST("/process", h.Payments.Process)
		payments.GET("/:id", h.Payments.Get)
		payments.GET("/order/:orderId", h.Payments.ByOrder)
		payments.PUT("/:id/refund", RequireRole(domain.RoleAdmin), h.Payments.Refund)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("/product/:productId", h.Reviews.ByProduct)
		reviews.GET("/product/:productId/stats", h.Reviews.Stats)
		reviews.GET("/:id", h.Reviews.Get)
		reviews.POST("", JWTAuth(), RequireRole(domain.RoleShopper), h.Reviews.Create)
		reviews.PUT("/:id", JWTAuth(), h.Reviews.Update)
		reviews.DELETE("/:id", JWTAuth(), h.Reviews.Delete)
	}

	return r
}
