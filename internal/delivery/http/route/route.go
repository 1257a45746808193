package route

import (
	"github.com/ferdian3456/postapi/internal/delivery/http"
	"github.com/ferdian3456/postapi/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App               *fiber.App
	AuthMiddleware    *middleware.AuthMiddleware
	UserController    *http.UserController
	PostController    *http.PostController
	StorageController *http.StorageController
}

func (c *RouteConfig) SetupRoute() {
	c.App.Get("/storage/*", c.StorageController.Serve)

	api := c.App.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api.Post("/register", c.UserController.Register)
	api.Post("/login", c.UserController.Login)

	api.Post("/logout", c.AuthMiddleware.ProtectedRoute(), c.UserController.Logout)
	api.Get("/me", c.AuthMiddleware.ProtectedRoute(), c.UserController.Me)

	postGroup := api.Group("/posts", c.AuthMiddleware.ProtectedRoute())
	postGroup.Get("/", c.PostController.List)
	postGroup.Post("/", c.PostController.Create)
	postGroup.Get("/:id", c.PostController.Show)
	postGroup.Put("/:id", c.PostController.Update)
	postGroup.Patch("/:id", c.PostController.Update)
	postGroup.Delete("/:id", c.PostController.Destroy)
}
