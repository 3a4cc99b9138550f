package routes

import (
	"gestao360/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients = "/clients"
	PathCatalog = "/catalog"
	PathOrders  = "/orders"
)

func addBusinessRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler, catalogHandler *handlers.CatalogHandler, orderHandler *handlers.OrderHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.RegisterClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PATCH("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.POST("", catalogHandler.RegisterItem)
		catalog.GET("", catalogHandler.ListItems)
		catalog.GET("/:id", catalogHandler.GetItem)
		catalog.PATCH("/:id", catalogHandler.UpdateItem)
		catalog.DELETE("/:id", catalogHandler.DeleteItem)
	}

	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.ComposeOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id", orderHandler.UpdateOrder)
		orders.PATCH("/:id/status", orderHandler.ChangeStatus)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
	}
}
