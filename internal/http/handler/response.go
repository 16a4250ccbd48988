package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/WarBros01113/Real-SurvEase/internal/service"
)

// FillSurvey records a fill/rate submission for the acting user.
func FillSurvey(svc service.ResponseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		surveyID := c.Params("id")
		if _, err := uuid.Parse(surveyID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		user, ok := requireActor(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "IDENTITY_REQUIRED", "valid X-User-ID header is required")
		}
		var in service.FillInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		resp, err := svc.Fill(c.UserContext(), surveyID, user, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}

// ListResponses returns a survey's responses, newest first.
func ListResponses(svc service.ResponseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		surveyID := c.Params("id")
		if _, err := uuid.Parse(surveyID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		items, err := svc.List(c.UserContext(), surveyID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"data": items, "total": len(items)})
	}
}
