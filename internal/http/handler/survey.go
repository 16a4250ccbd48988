package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/WarBros01113/Real-SurvEase/internal/service"
)

// ListSurveys serves the feed: a newest-first page of surveys with their
// aggregates, optionally narrowed by category and free-text search.
func ListSurveys(svc service.SurveyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.Feed(c.UserContext(), service.FeedQuery{
			Limit:    limit,
			Offset:   offset,
			Category: c.Query("category"),
			Search:   c.Query("q"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// PostSurvey accepts a new survey link from the acting user.
func PostSurvey(svc service.SurveyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner, ok := requireActor(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "IDENTITY_REQUIRED", "valid X-User-ID header is required")
		}
		var in service.PostSurveyInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		survey, err := svc.Post(c.UserContext(), owner, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(survey)
	}
}

// GetSurvey returns one survey with its aggregates.
func GetSurvey(svc service.SurveyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		survey, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(survey)
	}
}

// DeleteSurvey removes a survey; only its owner may do so.
func DeleteSurvey(svc service.SurveyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		actor, ok := requireActor(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "IDENTITY_REQUIRED", "valid X-User-ID header is required")
		}
		if err := svc.Delete(c.UserContext(), id, actor); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
