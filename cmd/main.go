// Package main is the entry point for the pricing-service application.
//
// @title           Pricing Service API
// @version         1.0.0
// @description     API for pricing customized restaurant menu items.
//
//	This service prices a menu item variant with its chosen customizations and
//	returns an itemized breakdown that sums exactly to the final price.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/tavolo/pricing-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Pricing
// @tag.description Price calculation operations
//
// @tag.name        Catalog
// @tag.description Menu catalog administration
//
// @tag.name        Auth
// @tag.description Authentication and authorization endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/tavolo/pricing-service/docs" // swagger docs

	"github.com/tavolo/pricing-service/config"
	"github.com/tavolo/pricing-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
