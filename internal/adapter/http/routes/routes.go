package routes

import (
	"context"
	"log"
	"os"
	"strings"

	_ "gestao360/docs" // swag-generated OpenAPI registration
	"gestao360/internal/adapter/http/handlers"
	"gestao360/internal/adapter/persistence/memory"
	"gestao360/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + getenvDefault("PORT", defaultPort)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store := memory.NewStore()
	if isDemoDataEnabled() {
		if err := memory.Seed(context.Background(), store); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Printf("[store] demo fixtures loaded")
	}

	clientRepo := memory.NewClientRepository(store)
	catalogRepo := memory.NewCatalogRepository(store)
	orderRepo := memory.NewOrderRepository(store)

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, clientRepo, catalogRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(clientRepo, catalogRepo, orderRepo, store)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBusinessRoutes(v1, clientHandler, catalogHandler, orderHandler)
	addDashboardRoutes(v1, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isDemoDataEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DEMO_DATA"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
