package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/WarBros01113/Real-SurvEase/internal/service"
)

// Leaderboard returns the ranked per-user activity board.
func Leaderboard(svc service.LeaderboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "25"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		res, err := svc.Top(c.UserContext(), limit)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
