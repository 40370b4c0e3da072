package main

import (
	_ "buhuchet_site/docs"
	"buhuchet_site/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Accounting Site API
// @version         1.0
// @description     Pricing calculator, quiz discount, reviews and site content for the accounting firm site.

// @contact.name   Site administrators

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
