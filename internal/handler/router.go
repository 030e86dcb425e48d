package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the API routes. Static segments (find, find_all) are
// registered alongside the parameterized routes; echo matches them first.
func RegisterRoutes(e *echo.Echo, merchants *MerchantHandler, items *ItemHandler) {
	e.GET("/health", Health)

	api := e.Group("/api/v1")

	api.GET("/merchants", merchants.List)
	api.GET("/merchants/find", merchants.Search)
	api.GET("/merchants/:id", merchants.Get)
	api.GET("/merchants/:id/items", merchants.Items)

	api.GET("/items", items.List)
	api.GET("/items/find_all", items.FindAll)
	api.GET("/items/:id", items.Get)
	api.POST("/items", items.Create)
	api.PUT("/items/:id", items.Update)
	api.PATCH("/items/:id", items.Update)
	api.DELETE("/items/:id", items.Delete)
	api.GET("/items/:id/merchant", items.Merchant)
}
