// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/gearshop-backend/internal/domain/cart"
	"github.com/your-org/gearshop-backend/internal/domain/catalog"
	"github.com/your-org/gearshop-backend/internal/domain/checkout"
	"github.com/your-org/gearshop-backend/internal/domain/customer"
	"github.com/your-org/gearshop-backend/internal/domain/order"
	"github.com/your-org/gearshop-backend/internal/interfaces/http/handlers"
	"github.com/your-org/gearshop-backend/internal/pkg/notification"
	"github.com/your-org/gearshop-backend/internal/pkg/pdf"
)

// Dependencies carries the wired domain services the routes expose.
type Dependencies struct {
	Catalog  *catalog.Service
	Carts    *cart.Manager
	Sessions *customer.Manager
	Checkout *checkout.Service
	Orders   *order.Service
	Receipts *pdf.Service
	Feed     *notification.Feed
}

// SetupRoutes registers every API route on the given group.
func SetupRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	SetupCatalogRoutes(rg, deps)
	SetupCartRoutes(rg, deps)
	SetupSessionRoutes(rg, deps)
	SetupCheckoutRoutes(rg, deps)
	SetupOrderRoutes(rg, deps)
	SetupNotificationRoutes(rg, deps)
}

// SetupCatalogRoutes sets up product catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/categories", catalogHandler.GetCategories)
		products.GET("/:id", catalogHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart routes
func SetupCartRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	cartHandler := handlers.NewCartHandler(deps.Carts, deps.Catalog)

	carts := rg.Group("/cart")
	{
		carts.GET("", cartHandler.GetCart)
		carts.DELETE("", cartHandler.ClearCart)
		carts.GET("/count", cartHandler.GetCount)
		carts.POST("/items", cartHandler.AddItem)
		carts.PUT("/items/:id", cartHandler.SetQuantity)
		carts.DELETE("/items/:id", cartHandler.RemoveItem)
	}
}

// SetupSessionRoutes sets up customer session routes
func SetupSessionRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	sessionHandler := handlers.NewSessionHandler(deps.Sessions)

	session := rg.Group("/session")
	{
		session.POST("/login", sessionHandler.Login)
		session.POST("/logout", sessionHandler.Logout)
		session.GET("/customer", sessionHandler.GetCurrent)
		session.PUT("/customer", sessionHandler.UpdateProfile)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	checkoutHandler := handlers.NewCheckoutHandler(deps.Checkout)

	co := rg.Group("/checkout")
	{
		co.GET("/summary", checkoutHandler.GetSummary)
		co.POST("/payment/validate", checkoutHandler.ValidatePayment)
	}
}

// SetupOrderRoutes sets up order routes
func SetupOrderRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	orderHandler := handlers.NewOrderHandler(deps.Orders, deps.Checkout, deps.Receipts)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.PlaceOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/current", orderHandler.GetCurrentOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.DownloadReceipt)
		orders.PUT("/:id/status", orderHandler.UpdateStatus)
	}
}

// SetupNotificationRoutes sets up notification feed routes
func SetupNotificationRoutes(rg *gin.RouterGroup, deps *Dependencies) {
	notificationHandler := handlers.NewNotificationHandler(deps.Feed)

	rg.GET("/notifications", notificationHandler.Drain)
}
