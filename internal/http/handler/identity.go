package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserIDHeader carries the acting user's ID, set by the upstream auth
// service. This service does not authenticate; it only requires the header to
// be present and UUID-shaped on mutating routes.
const UserIDHeader = "X-User-ID"

// actorID returns the acting user's ID or an empty string when the header is
// missing or malformed.
func actorID(c *fiber.Ctx) string {
	id := c.Get(UserIDHeader)
	if id == "" {
		return ""
	}
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return id
}

// requireActor writes a 401 when no valid identity header is present.
// It returns the ID and whether the caller may proceed.
func requireActor(c *fiber.Ctx) (string, bool) {
	id := actorID(c)
	return id, id != ""
}
