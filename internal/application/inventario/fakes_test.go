package inventario_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria para los tests de orquestación.
//
// base guarda el estado "commiteado"; cada Run del fakeTxRunner escribe en un
// buffer aparte que solo se fusiona con base si fn retorna nil. Así los tests
// pueden afirmar que un rollback no deja ni movimientos ni detalles.
// ──────────────────────────────────────────────────────────────────────────────

type almacen struct {
	lotes       []*entity.Lote
	movimientos []*entity.MovimientoInventario
	ventas      map[string]*entity.Venta
	ventaDet    []*entity.VentaDetalle
	compras     map[string]*entity.Compra
	compraDet   []*entity.CompraDetalle
	pagos       []*entity.PagoCompra
	traslados   map[string]*entity.Traslado
	trasladoDet []*entity.TrasladoDetalle
	productos   map[string]*entity.Producto
	locales     map[string]*entity.Local
	proveedores map[string]*entity.Proveedor
}

func nuevoAlmacen() *almacen {
	return &almacen{
		ventas:      map[string]*entity.Venta{},
		compras:     map[string]*entity.Compra{},
		traslados:   map[string]*entity.Traslado{},
		productos:   map[string]*entity.Producto{},
		locales:     map[string]*entity.Local{},
		proveedores: map[string]*entity.Proveedor{},
	}
}

// agregarStock simula una entrada previa ya commiteada en el ledger.
func (a *almacen) agregarStock(loteID, localID string, cantidad int64) {
	a.movimientos = append(a.movimientos, &entity.MovimientoInventario{
		ID: loteID + "/" + localID, LoteID: loteID, LocalID: localID,
		Cantidad: cantidad, Tipo: entity.MovimientoCompra, Fecha: time.Now(),
	})
}

func (a *almacen) agregarLote(id, productoID, etiqueta, vence string) {
	fv, _ := time.Parse("2006-01-02", vence)
	a.lotes = append(a.lotes, &entity.Lote{
		ID: id, ProductoID: productoID, Etiqueta: etiqueta,
		FechaVencimiento: fv, CreatedAt: time.Now(),
	})
}

// ── Repositorios fake ────────────────────────────────────────────────────────
// Cada repo lee base y buffer (si buf == nil solo base, como un repo de pool)
// y escribe siempre en buffer.

type fakeMovRepo struct{ base, buf *almacen }

func (r *fakeMovRepo) todos() []*entity.MovimientoInventario {
	out := append([]*entity.MovimientoInventario{}, r.base.movimientos...)
	if r.buf != nil {
		out = append(out, r.buf.movimientos...)
	}
	return out
}

func (r *fakeMovRepo) Create(_ context.Context, mov *entity.MovimientoInventario) error {
	r.buf.movimientos = append(r.buf.movimientos, mov)
	return nil
}

func (r *fakeMovRepo) StockDisponible(_ context.Context, loteID, localID string) (int64, error) {
	var total int64
	for _, m := range r.todos() {
		if m.LoteID == loteID && m.LocalID == localID {
			total += m.Cantidad
		}
	}
	return total, nil
}

func (r *fakeMovRepo) Kardex(_ context.Context, loteID, localID string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for _, m := range r.todos() {
		if m.LoteID == loteID && m.LocalID == localID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovRepo) StockBajoMinimo(_ context.Context) ([]repository.StockBajo, error) {
	return nil, nil
}

type fakeLoteRepo struct{ base, buf *almacen }

func (r *fakeLoteRepo) todos() []*entity.Lote {
	out := append([]*entity.Lote{}, r.base.lotes...)
	if r.buf != nil {
		out = append(out, r.buf.lotes...)
	}
	return out
}

func (r *fakeLoteRepo) Create(_ context.Context, lote *entity.Lote) error {
	r.buf.lotes = append(r.buf.lotes, lote)
	return nil
}

func (r *fakeLoteRepo) GetByID(_ context.Context, id string) (*entity.Lote, error) {
	for _, l := range r.todos() {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLoteRepo) GetByEtiqueta(_ context.Context, productoID, etiqueta string) (*entity.Lote, error) {
	for _, l := range r.todos() {
		if l.ProductoID == productoID && l.Etiqueta == etiqueta {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLoteRepo) ListarPorProducto(_ context.Context, productoID string) ([]*entity.Lote, error) {
	var out []*entity.Lote
	for _, l := range r.todos() {
		if l.ProductoID == productoID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ListarFEFO ordena por vencimiento y, a igual fecha, por orden de inserción
// (orden estable del slice), igual que el ORDER BY fecha_vencimiento, id.
func (r *fakeLoteRepo) ListarFEFO(_ context.Context, productoID string) ([]*entity.Lote, error) {
	lotes, _ := r.ListarPorProducto(context.Background(), productoID)
	sort.SliceStable(lotes, func(i, j int) bool {
		return lotes[i].FechaVencimiento.Before(lotes[j].FechaVencimiento)
	})
	return lotes, nil
}

func (r *fakeLoteRepo) PorVencer(_ context.Context, hasta time.Time) ([]repository.LotePorVencer, error) {
	return nil, nil
}

type fakeVentaRepo struct{ base, buf *almacen }

func (r *fakeVentaRepo) CrearCabecera(_ context.Context, v *entity.Venta) error {
	r.buf.ventas[v.ID] = v
	return nil
}

func (r *fakeVentaRepo) CrearDetalle(_ context.Context, d *entity.VentaDetalle) error {
	r.buf.ventaDet = append(r.buf.ventaDet, d)
	return nil
}

func (r *fakeVentaRepo) ActualizarTotal(_ context.Context, ventaID string, total decimal.Decimal) error {
	if v, ok := r.buf.ventas[ventaID]; ok {
		v.Total = total
		return nil
	}
	if v, ok := r.base.ventas[ventaID]; ok {
		v.Total = total
	}
	return nil
}

func (r *fakeVentaRepo) GetByID(_ context.Context, id string) (*entity.Venta, error) {
	if r.buf != nil {
		if v, ok := r.buf.ventas[id]; ok {
			return v, nil
		}
	}
	return r.base.ventas[id], nil
}

func (r *fakeVentaRepo) DetallesPorVenta(_ context.Context, ventaID string) ([]*entity.VentaDetalle, error) {
	det := append([]*entity.VentaDetalle{}, r.base.ventaDet...)
	if r.buf != nil {
		det = append(det, r.buf.ventaDet...)
	}
	var out []*entity.VentaDetalle
	for _, d := range det {
		if d.VentaID == ventaID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeCompraRepo struct{ base, buf *almacen }

func (r *fakeCompraRepo) CrearCabecera(_ context.Context, c *entity.Compra) error {
	r.buf.compras[c.ID] = c
	return nil
}

func (r *fakeCompraRepo) CrearDetalle(_ context.Context, d *entity.CompraDetalle) error {
	r.buf.compraDet = append(r.buf.compraDet, d)
	return nil
}

func (r *fakeCompraRepo) CrearPago(_ context.Context, p *entity.PagoCompra) error {
	r.buf.pagos = append(r.buf.pagos, p)
	return nil
}

func (r *fakeCompraRepo) ActualizarTotal(_ context.Context, compraID string, total decimal.Decimal) error {
	if c, ok := r.buf.compras[compraID]; ok {
		c.Total = total
	}
	return nil
}

func (r *fakeCompraRepo) GetByID(_ context.Context, id string) (*entity.Compra, error) {
	if r.buf != nil {
		if c, ok := r.buf.compras[id]; ok {
			return c, nil
		}
	}
	return r.base.compras[id], nil
}

func (r *fakeCompraRepo) DetallesPorCompra(_ context.Context, compraID string) ([]*entity.CompraDetalle, error) {
	det := append([]*entity.CompraDetalle{}, r.base.compraDet...)
	if r.buf != nil {
		det = append(det, r.buf.compraDet...)
	}
	var out []*entity.CompraDetalle
	for _, d := range det {
		if d.CompraID == compraID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeCompraRepo) PagosPorCompra(_ context.Context, compraID string) ([]*entity.PagoCompra, error) {
	pagos := append([]*entity.PagoCompra{}, r.base.pagos...)
	if r.buf != nil {
		pagos = append(pagos, r.buf.pagos...)
	}
	var out []*entity.PagoCompra
	for _, p := range pagos {
		if p.CompraID == compraID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeTrasladoRepo struct{ base, buf *almacen }

func (r *fakeTrasladoRepo) CrearCabecera(_ context.Context, t *entity.Traslado) error {
	r.buf.traslados[t.ID] = t
	return nil
}

func (r *fakeTrasladoRepo) CrearDetalle(_ context.Context, d *entity.TrasladoDetalle) error {
	r.buf.trasladoDet = append(r.buf.trasladoDet, d)
	return nil
}

func (r *fakeTrasladoRepo) GetByID(_ context.Context, id string) (*entity.Traslado, error) {
	if r.buf != nil {
		if t, ok := r.buf.traslados[id]; ok {
			return t, nil
		}
	}
	return r.base.traslados[id], nil
}

func (r *fakeTrasladoRepo) DetallesPorTraslado(_ context.Context, trasladoID string) ([]*entity.TrasladoDetalle, error) {
	det := append([]*entity.TrasladoDetalle{}, r.base.trasladoDet...)
	if r.buf != nil {
		det = append(det, r.buf.trasladoDet...)
	}
	var out []*entity.TrasladoDetalle
	for _, d := range det {
		if d.TrasladoID == trasladoID {
			out = append(out, d)
		}
	}
	return out, nil
}

// fakeProductoRepo escribe las actualizaciones en el buffer como copia, para
// que un rollback no mute el catálogo base.
type fakeProductoRepo struct{ base, buf *almacen }

func (r *fakeProductoRepo) Create(_ context.Context, p *entity.Producto) error {
	r.buf.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) Update(_ context.Context, p *entity.Producto) error {
	copia := *p
	r.buf.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) GetByID(_ context.Context, id string) (*entity.Producto, error) {
	if r.buf != nil {
		if p, ok := r.buf.productos[id]; ok {
			return p, nil
		}
	}
	return r.base.productos[id], nil
}

func (r *fakeProductoRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Producto, error) {
	for _, p := range r.base.productos {
		if p.Codigo == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductoRepo) List(_ context.Context, limit, offset int) ([]*entity.Producto, error) {
	var out []*entity.Producto
	for _, p := range r.base.productos {
		out = append(out, p)
	}
	return out, nil
}

type fakeLocalRepo struct{ base *almacen }

func (r *fakeLocalRepo) Create(_ context.Context, l *entity.Local) error {
	r.base.locales[l.ID] = l
	return nil
}

func (r *fakeLocalRepo) GetByID(_ context.Context, id string) (*entity.Local, error) {
	return r.base.locales[id], nil
}

func (r *fakeLocalRepo) List(_ context.Context) ([]*entity.Local, error) {
	var out []*entity.Local
	for _, l := range r.base.locales {
		out = append(out, l)
	}
	return out, nil
}

type fakeProveedorRepo struct{ base *almacen }

func (r *fakeProveedorRepo) Create(_ context.Context, p *entity.Proveedor) error {
	r.base.proveedores[p.ID] = p
	return nil
}

func (r *fakeProveedorRepo) GetByID(_ context.Context, id string) (*entity.Proveedor, error) {
	return r.base.proveedores[id], nil
}

func (r *fakeProveedorRepo) List(_ context.Context) ([]*entity.Proveedor, error) {
	return nil, nil
}

// ── TxRunner fake ────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	base     *almacen
	corridas int // veces que se abrió "transacción"
	commits  int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	loteRepo repository.LoteRepository,
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
	compraRepo repository.CompraRepository,
	trasladoRepo repository.TrasladoRepository,
) error) error {
	r.corridas++
	buf := nuevoAlmacen()
	err := fn(
		&fakeMovRepo{base: r.base, buf: buf},
		&fakeLoteRepo{base: r.base, buf: buf},
		&fakeProductoRepo{base: r.base, buf: buf},
		&fakeVentaRepo{base: r.base, buf: buf},
		&fakeCompraRepo{base: r.base, buf: buf},
		&fakeTrasladoRepo{base: r.base, buf: buf},
	)
	if err != nil {
		return err // rollback: el buffer se descarta
	}
	r.commit(buf)
	r.commits++
	return nil
}

func (r *fakeTxRunner) commit(buf *almacen) {
	r.base.lotes = append(r.base.lotes, buf.lotes...)
	r.base.movimientos = append(r.base.movimientos, buf.movimientos...)
	r.base.ventaDet = append(r.base.ventaDet, buf.ventaDet...)
	r.base.compraDet = append(r.base.compraDet, buf.compraDet...)
	r.base.pagos = append(r.base.pagos, buf.pagos...)
	r.base.trasladoDet = append(r.base.trasladoDet, buf.trasladoDet...)
	for id, v := range buf.ventas {
		r.base.ventas[id] = v
	}
	for id, c := range buf.compras {
		r.base.compras[id] = c
	}
	for id, t := range buf.traslados {
		r.base.traslados[id] = t
	}
	for id, p := range buf.productos {
		r.base.productos[id] = p
	}
}

// ── Generador de recibos fake ────────────────────────────────────────────────

type fakeReciboGen struct{ llamadas int }

func (g *fakeReciboGen) GenerarReciboPDF(_ context.Context, _ *entity.Venta, _ *entity.Local, _ []inventario.ReciboLinea) ([]byte, error) {
	g.llamadas++
	return []byte("%PDF-fake"), nil
}
