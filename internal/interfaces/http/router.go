package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas del catálogo son públicas;
// toda escritura exige Bearer Token con rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/catalog")
	auth := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(RoleAdmin)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/tree", categoryHandler.Tree)
	categories.Post("/", auth, adminOnly, categoryHandler.Create)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", auth, adminOnly, productHandler.Create)
	products.Put("/:id", auth, adminOnly, productHandler.Update)
	products.Delete("/:id", auth, adminOnly, productHandler.Delete)
}
