package main

import (
	_ "gestao360/docs"
	"gestao360/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão360 API
// @version         1.0
// @description     Business-management dashboard backend (clients, catalog, inventory, service orders, scheduling). All state is in-memory and resets on restart.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
