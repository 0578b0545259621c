package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/busraislam39/tiktwinwebapp/internal/middleware"
	"github.com/busraislam39/tiktwinwebapp/internal/model"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/videos?search=
func (h *VideoHandler) List(c fiber.Ctx) error {
	videos, err := h.svc.List(c.Context(), fiber.Query[string](c, "search"))
	if err != nil {
		return writeError(c, err, "Failed to list videos")
	}
	return c.JSON(videos)
}

// Get handles GET /api/videos/:id
func (h *VideoHandler) Get(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	video, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return writeError(c, err, "Failed to lookup video")
	}
	return c.JSON(video)
}

// Upload handles POST /api/videos (multipart: videoFile + metadata fields)
func (h *VideoHandler) Upload(c fiber.Ctx) error {
	file, err := c.FormFile("videoFile")
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_FILE", "videoFile is required")
	}

	meta := model.VideoMetadata{
		Title:     c.FormValue("title"),
		Publisher: c.FormValue("publisher"),
		Producer:  c.FormValue("producer"),
		Genre:     c.FormValue("genre"),
		AgeRating: c.FormValue("ageRating"),
	}

	src, err := file.Open()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "BAD_FILE", "Could not read uploaded file")
	}
	defer src.Close()

	identity := middleware.IdentityFrom(c)
	video, err := h.svc.Upload(c.Context(), identity.UserID, meta, file.Filename, file.Size, src)
	if err != nil {
		Metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return writeError(c, err, "Failed to upload video")
	}

	Metrics.UploadsTotal.WithLabelValues("accepted").Inc()
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Update handles PUT /api/videos/:id
func (h *VideoHandler) Update(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	var meta model.VideoMetadata
	if err := c.Bind().JSON(&meta); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	video, err := h.svc.Update(c.Context(), id, meta)
	if err != nil {
		return writeError(c, err, "Failed to update video")
	}
	return c.JSON(video)
}

// Delete handles DELETE /api/videos/:id
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", "id must be an integer")
	}

	if err := h.svc.Delete(c.Context(), id); err != nil {
		return writeError(c, err, "Failed to delete video")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// paramID parses the :id path segment.
func paramID(c fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
