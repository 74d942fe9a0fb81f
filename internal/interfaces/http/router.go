package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Registro-api/internal/application/auth"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)

	// Público
	authGroup.Post("/validate-ruc", authHandler.ValidateRUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protegido (requiere Bearer Token)
	authGroup.Get("/profile", AuthMiddleware(deps.JWTSecret), authHandler.Profile)
}
