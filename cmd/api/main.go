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

	"github.com/dquintero/farmacia-erp/internal/application/auth"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/application/usecase"
	infrapdf "github.com/dquintero/farmacia-erp/internal/infrastructure/pdf"
	"github.com/dquintero/farmacia-erp/internal/infrastructure/postgres"
	httpRouter "github.com/dquintero/farmacia-erp/internal/interfaces/http"
	"github.com/dquintero/farmacia-erp/pkg/config"
	"github.com/dquintero/farmacia-erp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios atados al pool (lecturas fuera de transacción)
	productoRepo := postgres.NewProductoRepository(pool)
	loteRepo := postgres.NewLoteRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	localRepo := postgres.NewLocalRepository(pool)
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	ventaRepo := postgres.NewVentaRepository(pool)
	compraRepo := postgres.NewCompraRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	reciboGen := infrapdf.NewMarotoReciboGenerator()

	ventaUC := inventario.NewVentaUseCase(txRunner, productoRepo, localRepo, ventaRepo, loteRepo, reciboGen)
	compraUC := inventario.NewCompraUseCase(txRunner, productoRepo, proveedorRepo, localRepo, compraRepo)
	transferenciaUC := inventario.NewTransferenciaUseCase(txRunner, localRepo)
	consultaUC := inventario.NewConsultaUseCase(movimientoRepo, loteRepo, productoRepo)
	notificacionUC := inventario.NewNotificacionUseCase(loteRepo, movimientoRepo)
	productoUC := usecase.NewProductoUseCase(productoRepo)
	localUC := usecase.NewLocalUseCase(localRepo)
	terceroUC := usecase.NewTerceroUseCase(proveedorRepo, clienteRepo)
	authUC := auth.NewAuthUseCase(empleadoRepo, localRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia ERP API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:      productoUC,
		LocalUC:         localUC,
		VentaUC:         ventaUC,
		CompraUC:        compraUC,
		TransferenciaUC: transferenciaUC,
		ConsultaUC:      consultaUC,
		NotificacionUC:  notificacionUC,
		TerceroUC:       terceroUC,
		AuthUC:          authUC,
		JWTSecret:       cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
