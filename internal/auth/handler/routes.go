package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/souvikghost/Souvik-Tech-Agency/pkg/constant"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, users *UserHandler) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/logout", auth.Logout)
	authGroup.Get("/me", auth.RequireAuth, auth.Me)

	adminOnly := auth.RequireRole(constant.RoleAdmin)

	userGroup := api.Group("/users", auth.RequireAuth)
	userGroup.Patch("/profile", users.UpdateProfile)
	userGroup.Post("/", adminOnly, users.Create)
	userGroup.Get("/", adminOnly, users.List)
	userGroup.Get("/:id", adminOnly, users.GetByID)
	userGroup.Delete("/:id", adminOnly, users.Delete)

	admin := api.Group("/admin", auth.RequireAuth, adminOnly)
	admin.Get("/access-log", users.AccessLog)
}
