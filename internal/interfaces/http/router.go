package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockeye/estoque-api/internal/application/auth"
	"github.com/stockeye/estoque-api/internal/application/catalog"
	"github.com/stockeye/estoque-api/internal/application/ledger"
	"github.com/stockeye/estoque-api/internal/application/ports"
	"github.com/stockeye/estoque-api/internal/application/query"
	"github.com/stockeye/estoque-api/internal/application/reports"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CatalogUC *catalog.UseCase
	LedgerUC  *ledger.UseCase
	QueryUC   *query.UseCase
	ReportsUC *reports.UseCase
	AuthUC    *auth.UseCase
	Detector  ports.ItemDetector
	JWTSecret string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de itens (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC, deps.QueryUC)
	items.Post("/", itemHandler.Register)
	items.Get("/", itemHandler.List)
	items.Get("/:name", itemHandler.GetByName)
	items.Get("/:name/movements", itemHandler.History)

	// Ledger de movimentações (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.QueryUC)
	movements.Post("/", movementHandler.Apply)
	movements.Post("/batch", movementHandler.ApplyBatch)
	movements.Get("/", movementHandler.ListRecent)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.QueryUC)
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/critical", dashboardHandler.GetCritical)

	// Relatórios e exportação (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/stock.pdf", reportHandler.StockPDF)
	reportsGroup.Get("/movements.xml", reportHandler.MovementsXML)

	// Classificação por imagem (protegido)
	detectHandler := NewDetectHandler(deps.Detector, deps.CatalogUC)
	protected.Post("/detect", detectHandler.Detect)
}
