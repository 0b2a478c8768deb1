package main

import (
	_ "contractor_pipeline/docs"
	"contractor_pipeline/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Contractor Pipeline API
// @version         1.0
// @description     Lead to estimate to job to invoice pipeline for contracting businesses, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Tenant
// @in header
// @name X-Organization-ID
// @description Organization id every /v1 request is scoped to.

func main() {
	routes.Run()
}
