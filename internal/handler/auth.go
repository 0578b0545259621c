package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/busraislam39/tiktwinwebapp/internal/middleware"
	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req model.RegisterRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	resp, err := h.users.Register(c.Context(), req)
	if err != nil {
		return writeError(c, err, "Failed to register")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	resp, err := h.users.Login(c.Context(), req)
	if err != nil {
		return writeError(c, err, "Failed to log in")
	}
	return c.JSON(resp)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req model.RefreshRequest
	if err := c.Bind().JSON(&req); err != nil || req.Refresh == "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Refresh token required")
	}

	pair, err := h.users.Refresh(c.Context(), req.Refresh)
	if err != nil {
		return writeError(c, err, "Failed to refresh tokens")
	}
	return c.JSON(pair)
}
