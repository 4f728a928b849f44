// Package pdf genera la boleta de una orden (representación gráfica para el
// cliente) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Pastelería Mil Sabores  │  N° Orden + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: nombre, dirección de envío, comuna/región          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subtotal                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuentos / IVA / TOTAL                │
//	│  FOOTER: estado + método de pago                             │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/milsabores/pasteleria-api/internal/application/usecase"
	"github.com/milsabores/pasteleria-api/internal/domain/entity"
)

const storeName = "Pastelería Mil Sabores"

var (
	colorPrimary = &props.Color{Red: 156, Green: 73, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptGenerator = (*BoletaGenerator)(nil)

// BoletaGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type BoletaGenerator struct{}

// NewBoletaGenerator construye el generador.
func NewBoletaGenerator() *BoletaGenerator { return &BoletaGenerator{} }

// GenerateReceipt genera el PDF de la boleta y devuelve sus bytes.
func (g *BoletaGenerator) GenerateReceipt(_ context.Context, order *entity.Order) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Boleta "+order.NumeroOrden, true).
		WithAuthor(storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(order.Productos) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleta: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y número de orden + fecha (der).
func headerRow(order *entity.Order) core.Row {
	fecha := order.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Boleta de compra", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(order.NumeroOrden, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{Size: 9, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

// clienteRow: destinatario y dirección de envío.
func clienteRow(order *entity.Order) core.Row {
	envio := order.DatosEnvio
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Cliente: "+envio.Nombre+" "+envio.Apellidos, props.Text{Size: 9, Top: 1}),
			text.New("Envío: "+envio.Direccion+", "+envio.Comuna+", "+envio.Region, props.Text{Size: 9, Top: 6, Color: colorGray}),
			text.New(envio.Email, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	return row.New(8).Add(
		text.NewCol(2, "Cant.", header),
		text.NewCol(6, "Producto", header),
		col.New(2).Add(text.New("P. Unit", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Subtotal", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right})),
	)
}

func tableDetailRows(items []entity.OrderItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		subtotal := it.Precio.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		rows = append(rows, row.New(6).Add(
			text.NewCol(2, fmt.Sprintf("%d", it.Cantidad), props.Text{Size: 9}),
			text.NewCol(6, it.Nombre, props.Text{Size: 9}),
			col.New(2).Add(text.New("$"+formatMoney(it.Precio.StringFixed(0)), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New("$"+formatMoney(subtotal.StringFixed(0)), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func totalsRows(order *entity.Order) []core.Row {
	totalRow := func(label string, value decimal.Decimal, bold bool) core.Row {
		style := props.Text{Size: 9, Align: align.Right}
		if bold {
			style = props.Text{Size: 11, Align: align.Right, Style: fontstyle.Bold, Color: colorPrimary}
		}
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(label, style)),
			col.New(2).Add(text.New("$"+formatMoney(value.StringFixed(0)), style)),
		)
	}
	return []core.Row{
		totalRow("Subtotal", order.Subtotal, false),
		totalRow("Descuentos", order.Descuentos.Neg(), false),
		totalRow("IVA", order.IVA, false),
		totalRow("TOTAL", order.Total, true),
	}
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(s) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		s = string(buf)
	}
	if neg {
		return "-" + s
	}
	return s
}

func footerRow(order *entity.Order) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(
				fmt.Sprintf("Estado: %s · Método de pago: %s", order.Estado, order.MetodoPago),
				props.Text{Size: 8, Color: colorGray, Align: align.Center},
			),
		),
	)
}
