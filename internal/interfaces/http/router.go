package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventory-tracker/internal/application/analytics"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/application/usecase"
	"github.com/jhoicas/inventory-tracker/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	LocationUC       *usecase.LocationUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementUC       *inventory.MovementUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *analytics.ReportUseCase
	Metrics          *Metrics // opcional
	JWTSecret        string   // vacío = escrituras sin autenticación
}

// Router registra las rutas de la API. Las lecturas son públicas; las escrituras exigen
// Bearer Token cuando hay JWTSecret.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	write := func(roles ...string) []fiber.Handler {
		if deps.JWTSecret == "" {
			return nil
		}
		return []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(roles...)}
	}
	catalogWrite := write(jwt.RoleAdmin)
	movementWrite := write(jwt.RoleAdmin, jwt.RoleOperator)

	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", append(catalogWrite, productHandler.Create)...)
	products.Put("/:id", append(catalogWrite, productHandler.Update)...)
	products.Delete("/:id", append(catalogWrite, productHandler.Delete)...)

	locations := api.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", append(catalogWrite, locationHandler.Create)...)
	locations.Put("/:id", append(catalogWrite, locationHandler.Update)...)
	locations.Delete("/:id", append(catalogWrite, locationHandler.Delete)...)

	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementUC, deps.Metrics)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Post("/", append(movementWrite, movementHandler.Register)...)
	movements.Delete("/:id", append(movementWrite, movementHandler.Delete)...)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock", reportHandler.StockReport)
	reports.Get("/products", reportHandler.ProductTotals)
}
