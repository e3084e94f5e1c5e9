// Package pdf implementa la generación del recibo de venta en PDF.
//
// Layout de la página:
//
//	┌──────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + dirección │ N° Recibo + Fecha    │
//	│  ──────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | Lote | P.Unit | Subtotal   │
//	│  ──────────────────────────────────────────────────  │
//	│  TOTALES: Descuentos / TOTAL                         │
//	│  Tipo de pago + leyenda                              │
//	└──────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appinv "github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 105, Blue: 92}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReciboGenerator implementa inventario.ReciboPDFGenerator usando Maroto v2.
type MarotoReciboGenerator struct{}

// NewMarotoReciboGenerator construye el generador.
func NewMarotoReciboGenerator() *MarotoReciboGenerator { return &MarotoReciboGenerator{} }

// GenerarReciboPDF genera el recibo de la venta y devuelve sus bytes.
func (g *MarotoReciboGenerator) GenerarReciboPDF(
	_ context.Context,
	venta *entity.Venta,
	local *entity.Local,
	lineas []appinv.ReciboLinea,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta", true).
		WithAuthor(local.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(venta, local))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(lineas) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(venta, lineas))
	m.AddRows(footerRow(venta))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: sucursal (izq) y número de recibo + fecha (der).
func headerRow(venta *entity.Venta, local *entity.Local) core.Row {
	fecha := venta.Fecha.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(local.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(local.Direccion, "—"), props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
			text.New("Tel: "+nonEmpty(local.Telefono, "—"), props.Text{
				Size: 8, Top: 13, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(venta.ID, props.Text{
				Size: 6.5, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 5, align.Left),
		h("Lote", 2, align.Center),
		h("P.Unit.", 2, align.Right),
		h("Subtotal", 2, align.Right),
	)
}

// tableDetailRows: una fila por línea del recibo. Una línea de venta repartida
// entre varios lotes sale como varias filas, cada una con su etiqueta de lote.
func tableDetailRows(lineas []appinv.ReciboLinea) []core.Row {
	result := make([]core.Row, 0, len(lineas))
	for _, l := range lineas {
		d := l.Detalle
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", d.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductoNombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.LoteEtiqueta,
				props.Text{Size: 7.5, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				d.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				d.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: descuentos acumulados y total a pagar.
func totalsRow(venta *entity.Venta, lineas []appinv.ReciboLinea) core.Row {
	descuentos := decimal.Zero
	for _, l := range lineas {
		descuentos = descuentos.Add(l.Detalle.Descuento)
	}

	return row.New(16).Add(
		col.New(4),
		col.New(4).Add(
			text.New("Descuentos:", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
			}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 7,
			}),
		),
		col.New(4).Add(
			text.New(descuentos.StringFixed(2), props.Text{
				Size: 9, Align: align.Right, Right: 1,
			}),
			text.New(venta.Total.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 7,
			}),
		),
	)
}

// footerRow: tipo de pago y leyenda.
func footerRow(venta *entity.Venta) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Forma de pago: "+venta.TipoPago, props.Text{
			Style: fontstyle.Bold, Size: 8, Top: 2,
		}),
		text.New("Gracias por su compra. Conserve este recibo para cambios o reclamos.",
			props.Text{Size: 7, Color: colorGray, Top: 8}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
