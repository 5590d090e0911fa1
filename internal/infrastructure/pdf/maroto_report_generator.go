// Package pdf implementa la representación gráfica del resumen diario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Egg Bucket  │  Fecha del resumen                   │
//	│  Tarifa NECC del día (si existe)                            │
//	│  ───────────────────────────────────────────────────────────│
//	│  VENTAS:  Outlet | Monto  + Total                           │
//	│  PAGOS EFECTIVO / DIGITALES: ídem                           │
//	│  DAÑOS: ídem                                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"

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

	"github.com/eggbucket/eggbucket-api/internal/application/report"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

var _ report.DailyReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 217, Green: 119, Blue: 6}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.DailyReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReport genera el PDF del resumen y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDailyReport(_ context.Context, summary *report.DailySummary) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Egg Bucket — Resumen diario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	addSection(m, "Ventas", summary.Sales)
	addSection(m, "Pagos en efectivo", summary.Cash)
	addSection(m, "Pagos digitales", summary.Digital)
	addSection(m, "Daños", summary.Damages)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + tarifa NECC (der).
func headerRow(summary *report.DailySummary) core.Row {
	necc := "Tarifa NECC: sin publicar"
	if summary.NECCRate != nil {
		necc = "Tarifa NECC: " + summary.NECCRate.Rate.StringFixed(2)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Egg Bucket", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(necc, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Resumen diario", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+summary.Date, props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// addSection agrega el bloque de un tipo de entidad; se omite si no hubo captura.
func addSection(m core.Maroto, title string, rec *entity.DailyRecord) {
	if rec == nil {
		return
	}
	m.AddRows(row.New(10).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	))
	m.AddRows(tableHeaderRow())
	for _, name := range sortedOutlets(rec) {
		m.AddRows(row.New(5).Add(
			col.New(8).Add(text.New(name, props.Text{Size: 8, Left: 2})),
			col.New(4).Add(text.New(rec.OutletValues[name].StringFixed(2), props.Text{
				Size: 8, Align: align.Right,
			})),
		))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(
		col.New(8).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 9, Left: 2})),
		col.New(4).Add(text.New(rec.Total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
		})),
	))
}

func tableHeaderRow() core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New("Outlet", props.Text{Style: fontstyle.Bold, Size: 8, Left: 2, Color: colorGray})),
		col.New(4).Add(text.New("Monto", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorGray})),
	)
}

func sortedOutlets(rec *entity.DailyRecord) []string {
	names := make([]string, 0, len(rec.OutletValues))
	for name := range rec.OutletValues {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
