package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/busraislam39/tiktwinwebapp/internal/middleware"
	"github.com/busraislam39/tiktwinwebapp/internal/repository"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

// writeError maps service and repository errors onto the API error envelope.
// The taxonomy is kept strict: validation is 400 with the offending field,
// missing rows are 404 (never conflated with 403, which the policy middleware
// owns), duplicate usernames are 409, bad credentials and bad tokens are 401.
// Anything else is a 500 with no internal detail leaked.
func writeError(c fiber.Ctx, err error, fallback string) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "VALIDATION_ERROR",
				"field":   vErr.Field,
				"message": vErr.Message,
			},
		})
	case errors.Is(err, repository.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Not found")
	case errors.Is(err, repository.ErrUsernameTaken):
		return middleware.ErrorResponse(c, fiber.StatusConflict, "USERNAME_TAKEN", "Username already taken")
	case errors.Is(err, service.ErrBadCredentials):
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "BAD_CREDENTIALS", "Invalid username or password")
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrExpiredToken):
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
