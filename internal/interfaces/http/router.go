package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/milsabores/pasteleria-api/internal/application/auth"
	"github.com/milsabores/pasteleria-api/internal/application/usecase"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	UserUC     *usecase.UserUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"name":    "Pastelería Mil Sabores API",
			"version": "1.0.0",
			"status":  "ok",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	// Categorías (público)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:slug/products", categoryHandler.ProductsBySlug)

	// Productos: catálogo público de lectura, escritura solo admin
	// La ruta fija /my/products va antes de /:id para que Fiber no la capture.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/my/products", requireAuth, productHandler.ListMine)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireAuth, adminOnly, productHandler.Create)
	products.Put("/:id", requireAuth, adminOnly, productHandler.Update)
	products.Delete("/:id", requireAuth, adminOnly, productHandler.Delete)

	// Órdenes. El checkout acepta compradores anónimos (OptionalAuth); el
	// resto exige autenticación y el caso de uso aplica propiedad y rol.
	// Las rutas fijas van antes de /:id para que Fiber no las capture.
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", OptionalAuth(deps.JWTSecret), orderHandler.Create)
	ordersGroup.Get("/estadisticas", requireAuth, orderHandler.Statistics)
	ordersGroup.Get("/usuario/:usuarioId", requireAuth, orderHandler.ListByUser)
	ordersGroup.Get("/", requireAuth, orderHandler.List)
	ordersGroup.Get("/:id/boleta", requireAuth, orderHandler.Receipt)
	ordersGroup.Get("/:id", requireAuth, orderHandler.GetByID)
	ordersGroup.Put("/:id", requireAuth, adminOnly, orderHandler.UpdateStatus)

	// Usuarios (protegido)
	users := api.Group("/users", requireAuth)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/password", userHandler.ChangePassword)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// 404 con eco de la ruta pedida; va al final para capturar lo no ruteado.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Ruta no encontrada",
			"path":   c.Path(),
			"method": c.Method(),
		})
	})
}
