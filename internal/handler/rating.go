package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/busraislam39/tiktwinwebapp/internal/middleware"
	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(svc *service.RatingService) *RatingHandler {
	return &RatingHandler{svc: svc}
}

// List handles GET /api/ratings?video=
func (h *RatingHandler) List(c fiber.Ctx) error {
	var videoID *int64
	if raw := fiber.Query[string](c, "video"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_PARAM", "video must be an integer")
		}
		videoID = &id
	}

	ratings, err := h.svc.List(c.Context(), videoID)
	if err != nil {
		return writeError(c, err, "Failed to list ratings")
	}
	return c.JSON(ratings)
}

// Get handles GET /api/ratings/:id
func (h *RatingHandler) Get(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	rating, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err, "Failed to lookup rating")
	}
	return c.JSON(rating)
}

// Submit handles both POST /api/ratings and PUT /api/ratings/:id. Either way
// the write is the same upsert keyed on (video, caller): re-rating a video
// overwrites the previous score rather than adding a second row.
func (h *RatingHandler) Submit(c fiber.Ctx) error {
	var req model.RatingRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	identity := middleware.IdentityFrom(c)
	rating, created, err := h.svc.Submit(c.Context(), identity.UserID, req)
	if err != nil {
		return writeError(c, err, "Failed to submit rating")
	}

	if created {
		Metrics.RatingsTotal.WithLabelValues("created").Inc()
		return c.Status(fiber.StatusCreated).JSON(rating)
	}
	Metrics.RatingsTotal.WithLabelValues("updated").Inc()
	return c.JSON(rating)
}

// Delete handles DELETE /api/ratings/:id
func (h *RatingHandler) Delete(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return writeError(c, err, "Failed to delete rating")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
