package routes

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/travigo/nextrip-test-server/pkg/nextrip"
)

func NexTripRouter(router fiber.Router) {
	router.Get("/:stop_id", getNexTrip)
}

func getNexTrip(c *fiber.Ctx) error {
	stopID, err := strconv.ParseInt(c.Params("stop_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Parameter stop_id should be a 32-bit integer",
		})
	}

	log.Info().Int64("stop_id", stopID).Msgf("Request for stop ID: %d", stopID)

	departures, err := nextrip.Fixtures()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := &nextrip.Response{Departures: departures}
	responseReduced, err := response.Reduce()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Sheriff could not reduce departures",
		})
	}

	return c.JSON(responseReduced)
}
