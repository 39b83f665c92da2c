package main

import (
	_ "propmarketing/docs"
	"propmarketing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Property Marketing Budget API
// @version         1.0
// @description     Marketing budget service (catalog + budgets + audit trail) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
