// Package main is the entry point for the cash optimization service.
//
// @title           Cash Optimization Service API
// @version         1.0.0
// @description     API for computing the optimal ways to physically package cash amounts into bundles and blocks.
//
//	Given an amount and per-denomination stock ceilings, the service returns ranked packing variants.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/VirusAlex/CashCleanerSimulator
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
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ".
//
// @tag.name        Optimize
// @tag.description Cash packing optimization operations
//
// @tag.name        Stock
// @tag.description Stock level management
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/VirusAlex/CashCleanerSimulator/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/VirusAlex/CashCleanerSimulator/config"
	"github.com/VirusAlex/CashCleanerSimulator/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
