package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/teremets90/cashdrive-app/internal/auth"
	"github.com/teremets90/cashdrive-app/internal/handlers"
	"github.com/teremets90/cashdrive-app/internal/middleware"
	"github.com/teremets90/cashdrive-app/internal/repository"
)

func Register(app *fiber.App, h *handlers.Handler, codec *auth.Codec, users repository.UserRepository) {
	requireUser := middleware.RequireUser(codec)
	optionalUser := middleware.OptionalUser(codec)
	requireAdmin := middleware.RequireAdmin(codec, users)
	requirePage := middleware.RequirePage(codec)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", h.Register)
	authGroup.Post("/login", h.Login)
	authGroup.Post("/logout", h.Logout)
	authGroup.Get("/me", optionalUser, h.Me)

	api.Get("/profile", requireUser, h.GetProfile)
	api.Put("/profile", requireUser, h.UpdateProfile)
	api.Post("/upload", requireUser, h.Upload)

	api.Get("/challenges", requireUser, h.ListChallenges)
	api.Post("/challenges/:id/participate", requireUser, h.Participate)
	api.Post("/progress/update", requireUser, h.UpdateProgress)

	api.Get("/ratings", h.Ratings)

	admin := api.Group("/admin", requireAdmin)
	admin.Get("/challenges", h.AdminListChallenges)
	admin.Post("/challenges", h.AdminCreateChallenge)
	admin.Get("/challenges/archived", h.AdminListArchived)
	admin.Post("/challenges/auto-archive", h.AdminAutoArchive)
	admin.Patch("/challenges/:id", h.AdminSetChallengeActive)
	admin.Post("/challenges/:id/archive", h.AdminArchiveChallenge)
	admin.Get("/users", h.AdminListUsers)
	admin.Patch("/users/:id", h.AdminUpdateUser)
	admin.Delete("/users/:id", h.AdminDeleteUser)

	// page routes: a guest gets bounced to login with a return parameter
	pages := []string{"/profile", "/challenges", "/challenges/update"}
	for _, p := range pages {
		app.Get(p, requirePage, func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})
	}
	app.Get("/login", func(c *fiber.Ctx) error { return c.SendString("ok") })
}
