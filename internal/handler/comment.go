package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/busraislam39/tiktwinwebapp/internal/middleware"
	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// List handles GET /api/comments?video=
func (h *CommentHandler) List(c fiber.Ctx) error {
	var videoID *int64
	if raw := fiber.Query[string](c, "video"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "video must be an integer")
		}
		videoID = &id
	}

	comments, err := h.svc.List(c.Context(), videoID)
	if err != nil {
		return writeError(c, err, "Failed to list comments")
	}
	return c.JSON(comments)
}

// Get handles GET /api/comments/:id
func (h *CommentHandler) Get(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	comment, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err, "Failed to lookup comment")
	}
	return c.JSON(comment)
}

// Create handles POST /api/comments
func (h *CommentHandler) Create(c fiber.Ctx) error {
	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	identity := middleware.IdentityFrom(c)
	comment, err := h.svc.Create(c.Context(), identity.UserID, req)
	if err != nil {
		return writeError(c, err, "Failed to post comment")
	}

	Metrics.CommentsTotal.Inc()
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// Update handles PUT /api/comments/:id
func (h *CommentHandler) Update(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	var req model.CommentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	comment, err := h.svc.Update(c.Context(), id, req.Text)
	if err != nil {
		return writeError(c, err, "Failed to update comment")
	}
	return c.JSON(comment)
}

// Delete handles DELETE /api/comments/:id
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return writeError(c, err, "Failed to delete comment")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
