package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/WarBros01113/Real-SurvEase/internal/service"
)

// GetProfile returns a profile with its activity counts.
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UpsertProfile creates or updates the acting user's own profile, including
// the theme display preference.
func UpsertProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		actor, ok := requireActor(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "IDENTITY_REQUIRED", "valid X-User-ID header is required")
		}
		if actor != id {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "can only edit your own profile")
		}
		var in service.UpsertProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Upsert(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// UploadAvatar accepts a multipart avatar image (field name: file) for the
// acting user's own profile.
func UploadAvatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		actor, ok := requireActor(c)
		if !ok {
			return writeError(c, fiber.StatusUnauthorized, "IDENTITY_REQUIRED", "valid X-User-ID header is required")
		}
		if actor != id {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "can only edit your own profile")
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		p, err := svc.UploadAvatar(c.UserContext(), id, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// AvatarURL returns a presigned download URL for the user's avatar.
func AvatarURL(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		u, err := svc.AvatarURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": u})
	}
}

// Avatar streams the avatar image itself.
func Avatar(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rc, contentType, err := svc.Avatar(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		if contentType != "" {
			c.Set(fiber.HeaderContentType, contentType)
		}
		return c.SendStream(rc)
	}
}
