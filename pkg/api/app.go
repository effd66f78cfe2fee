package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/nextrip-test-server/pkg/api/routes"
	"github.com/travigo/nextrip-test-server/pkg/http_server"
	"github.com/travigo/nextrip-test-server/pkg/nextrip"
)

func NewApp() (*fiber.App, error) {
	if err := nextrip.LoadFixtures(); err != nil {
		return nil, err
	}

	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		StrictRouting:         true,
		CaseSensitive:         true,
	})
	webApp.Use(http_server.NewLogger())

	webApp.Get("/hello", routes.Hello)
	routes.NexTripRouter(webApp.Group("/nextrip"))

	return webApp, nil
}
