package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/stockeye/estoque-api/internal/application/auth"
	"github.com/stockeye/estoque-api/internal/application/catalog"
	"github.com/stockeye/estoque-api/internal/application/ledger"
	"github.com/stockeye/estoque-api/internal/application/ports"
	"github.com/stockeye/estoque-api/internal/application/query"
	"github.com/stockeye/estoque-api/internal/application/reports"
	infraexport "github.com/stockeye/estoque-api/internal/infrastructure/export"
	infrapdf "github.com/stockeye/estoque-api/internal/infrastructure/pdf"
	"github.com/stockeye/estoque-api/internal/infrastructure/postgres"
	"github.com/stockeye/estoque-api/internal/infrastructure/vision"
	httpRouter "github.com/stockeye/estoque-api/internal/interfaces/http"
	"github.com/stockeye/estoque-api/pkg/config"
	"github.com/stockeye/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	operatorRepo := postgres.NewOperatorRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	catalogUC := catalog.NewUseCase(itemRepo)
	ledgerUC := ledger.NewUseCase(txRunner, ledger.Config{
		AutoCreateItems:          cfg.Stock.AutoCreateItems,
		DefaultMinThreshold:      cfg.Stock.DefaultMinThreshold,
		DefaultCriticalThreshold: cfg.Stock.DefaultCriticalThreshold,
		SystemActor:              cfg.Stock.SystemActor,
	})
	queryUC := query.NewUseCase(reportRepo, movementRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	xmlExporter := infraexport.NewXMLExporter()
	reportsUC := reports.NewUseCase(queryUC, pdfGenerator, xmlExporter)

	authUC := auth.NewUseCase(operatorRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Classificador de imagens: backend http (serviço de inferência externo)
	// ou static (rótulo fixo para desenvolvimento).
	var detector ports.ItemDetector
	switch cfg.Detector.Backend {
	case "http":
		detector = vision.NewHTTPDetector(cfg.Detector.URL, cfg.Detector.Threshold)
		log.Info().Str("url", cfg.Detector.URL).Msg("classificador de imagens: backend http")
	default:
		detector = vision.NewStaticDetector(cfg.Detector.StaticLabel)
		log.Info().Str("label", cfg.Detector.StaticLabel).Msg("classificador de imagens: backend static")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockEye API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
		LedgerUC:  ledgerUC,
		QueryUC:   queryUC,
		ReportsUC: reportsUC,
		AuthUC:    authUC,
		Detector:  detector,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
