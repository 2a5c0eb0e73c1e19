package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowLoginPage)
	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)
	app.Get("/profile", handler.AuthRequired, handler.ShowProfilePage)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Post("/profile", handler.AuthRequired, handler.SaveProfile)

	feed := api.Group("/feed", handler.AuthRequired)
	feed.Get("", handler.GetFeed)
	feed.Get("/stream", handler.StreamFeed)

	api.Post("/posts", handler.AuthRequired, handler.CreatePost)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
