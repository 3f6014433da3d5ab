package main

import (
	_ "crm_reporting/docs"
	"crm_reporting/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CRM Revenue Reporting API
// @version         1.0
// @description     Revenue attribution and win/loss reporting over imported sales estimates, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
