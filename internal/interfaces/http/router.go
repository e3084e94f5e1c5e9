package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/auth"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/application/usecase"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductoUC      *usecase.ProductoUseCase
	LocalUC         *usecase.LocalUseCase
	VentaUC         *inventario.VentaUseCase
	CompraUC        *inventario.CompraUseCase
	TransferenciaUC *inventario.TransferenciaUseCase
	ConsultaUC      *inventario.ConsultaUseCase
	NotificacionUC  *inventario.NotificacionUseCase
	TerceroUC       *usecase.TerceroUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locales
	locales := protected.Group("/locales")
	localHandler := NewLocalHandler(deps.LocalUC)
	locales.Post("/", RequireRol(entity.RolAdmin), localHandler.Create)
	locales.Get("/", localHandler.List)
	locales.Get("/:id", localHandler.GetByID)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/", RequireRol(entity.RolAdmin, entity.RolEncargado), productoHandler.Create)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", RequireRol(entity.RolAdmin, entity.RolEncargado), productoHandler.Update)

	// Proveedores y clientes
	terceroHandler := NewTerceroHandler(deps.TerceroUC)
	proveedores := protected.Group("/proveedores")
	proveedores.Post("/", RequireRol(entity.RolAdmin, entity.RolEncargado), terceroHandler.CrearProveedor)
	proveedores.Get("/", terceroHandler.ListarProveedores)
	clientes := protected.Group("/clientes")
	clientes.Post("/", terceroHandler.CrearCliente)
	clientes.Get("/", terceroHandler.ListarClientes)

	// Ventas
	ventas := protected.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC)
	ventas.Post("/", ventaHandler.Registrar)
	ventas.Get("/:id", ventaHandler.Obtener)
	ventas.Get("/:id/recibo", ventaHandler.Recibo)

	// Compras (solo admin y encargado)
	compras := protected.Group("/compras", RequireRol(entity.RolAdmin, entity.RolEncargado))
	compraHandler := NewCompraHandler(deps.CompraUC)
	compras.Post("/", compraHandler.Registrar)
	compras.Get("/:id", compraHandler.Obtener)

	// Transferencias entre locales (solo admin y encargado)
	transferencias := protected.Group("/transferencias", RequireRol(entity.RolAdmin, entity.RolEncargado))
	transferenciaHandler := NewTransferenciaHandler(deps.TransferenciaUC)
	transferencias.Post("/", transferenciaHandler.Registrar)

	// Inventario: lotes, stock derivado y kardex
	inventarioHandler := NewInventarioHandler(deps.ConsultaUC, deps.NotificacionUC)
	protected.Get("/lotes", inventarioHandler.Lotes)
	inv := protected.Group("/inventario")
	inv.Get("/stock", inventarioHandler.Stock)
	inv.Get("/kardex", inventarioHandler.Kardex)

	// Notificaciones: barridos de vencimientos y stock bajo mínimo
	notif := protected.Group("/notificaciones")
	notif.Get("/vencimientos", inventarioHandler.Vencimientos)
	notif.Get("/stock-bajo", inventarioHandler.StockBajo)
}
