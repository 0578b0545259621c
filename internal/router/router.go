package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/busraislam39/tiktwinwebapp/internal/handler"
	"github.com/busraislam39/tiktwinwebapp/internal/middleware"
	"github.com/busraislam39/tiktwinwebapp/internal/policy"
	"github.com/busraislam39/tiktwinwebapp/internal/service"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth    *handler.AuthHandler
	Video   *handler.VideoHandler
	Comment *handler.CommentHandler
	Rating  *handler.RatingHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given
// Fiber app. Every /api route resolves the caller's identity first and then
// passes through the policy gate for its (action, resource) pair; handlers
// never re-check authorization.
func Setup(app *fiber.App, h *Handlers, auth *service.AuthService, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (no auth needed)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	identity := middleware.ResolveIdentity(auth)

	// Auth flows
	authLimit := middleware.NewAuthRateLimiter().Handler()
	app.Post("/auth/register", h.Auth.Register, authLimit)
	app.Post("/auth/login", h.Auth.Login, authLimit)
	app.Post("/auth/refresh", h.Auth.Refresh, authLimit)

	api := app.Group("/api", identity)

	gate := func(act policy.Action, res policy.Resource) fiber.Handler {
		return middleware.RequirePolicy(act, res)
	}

	// Video routes: reads are public, writes are creator-only.
	uploadLimit := middleware.NewUploadRateLimiter().Handler()
	videos := api.Group("/videos")
	videos.Get("/", h.Video.List, gate(policy.ActionList, policy.ResourceVideos))
	videos.Get("/:id", h.Video.Get, gate(policy.ActionRetrieve, policy.ResourceVideos))
	videos.Post("/", h.Video.Upload, gate(policy.ActionCreate, policy.ResourceVideos), uploadLimit)
	videos.Put("/:id", h.Video.Update, gate(policy.ActionUpdate, policy.ResourceVideos))
	videos.Delete("/:id", h.Video.Delete, gate(policy.ActionDelete, policy.ResourceVideos))

	// Comment routes: reads are public, writes follow the comment policy.
	comments := api.Group("/comments")
	comments.Get("/", h.Comment.List, gate(policy.ActionList, policy.ResourceComments))
	comments.Get("/:id", h.Comment.Get, gate(policy.ActionRetrieve, policy.ResourceComments))
	comments.Post("/", h.Comment.Create, gate(policy.ActionCreate, policy.ResourceComments))
	comments.Put("/:id", h.Comment.Update, gate(policy.ActionUpdate, policy.ResourceComments))
	comments.Delete("/:id", h.Comment.Delete, gate(policy.ActionDelete, policy.ResourceComments))

	// Rating routes: consumer-only throughout, reads included.
	ratings := api.Group("/ratings")
	ratings.Get("/", h.Rating.List, gate(policy.ActionList, policy.ResourceRatings))
	ratings.Get("/:id", h.Rating.Get, gate(policy.ActionRetrieve, policy.ResourceRatings))
	ratings.Post("/", h.Rating.Submit, gate(policy.ActionCreate, policy.ResourceRatings))
	ratings.Put("/:id", h.Rating.Submit, gate(policy.ActionUpdate, policy.ResourceRatings))
	ratings.Delete("/:id", h.Rating.Delete, gate(policy.ActionDelete, policy.ResourceRatings))
}
