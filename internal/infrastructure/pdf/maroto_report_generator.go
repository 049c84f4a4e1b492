// Package pdf implementa los reportes imprimibles de pedidos y tareas
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° Orden | Pieza | Última consulta | Estado         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de registros                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/luxuryfaisal/QimmatAlaseel/internal/application/usecase"
	"github.com/luxuryfaisal/QimmatAlaseel/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 76, Blue: 129}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateOrdersReport genera el PDF con la tabla de pedidos.
func (g *MarotoReportGenerator) GenerateOrdersReport(
	_ context.Context, title string, orders []*entity.Order,
) ([]byte, error) {
	m := newDocument(title)

	m.AddRows(tableHeaderRow(
		headerCell("N° Orden", 3),
		headerCell("N° Pieza", 3),
		headerCell("Última consulta", 3),
		headerCell("Estado", 3),
	))
	for _, o := range orders {
		m.AddRows(row.New(7).Add(
			bodyCell(o.OrderNumber, 3),
			bodyCell(o.PartNumber, 3),
			bodyCell(o.LastInquiry, 3),
			bodyCell(o.Status, 3),
		))
	}
	m.AddRows(footerRows(len(orders))...)

	return generate(m)
}

// GenerateTasksReport genera el PDF con la tabla de tareas.
func (g *MarotoReportGenerator) GenerateTasksReport(
	_ context.Context, title string, tasks []*entity.Task,
) ([]byte, error) {
	m := newDocument(title)

	m.AddRows(tableHeaderRow(
		headerCell("Tarea", 3),
		headerCell("Tipo", 2),
		headerCell("Última consulta", 3),
		headerCell("Estado", 2),
		headerCell("Fecha límite", 2),
	))
	for _, t := range tasks {
		m.AddRows(row.New(7).Add(
			bodyCell(t.TaskName, 3),
			bodyCell(t.TaskType, 2),
			bodyCell(t.LastInquiry, 3),
			bodyCell(t.TaskStatus, 2),
			bodyCell(t.DueDate, 2),
		))
	}
	m.AddRows(footerRows(len(tasks))...)

	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// newDocument crea el documento A4 con el header común ya agregado.
func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(headerRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	return m
}

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(title string) core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 5, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow(cells ...core.Col) core.Row {
	return row.New(8).Add(cells...)
}

func headerCell(label string, size int) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1,
	}))
}

func bodyCell(value string, size int) core.Col {
	if value == "" {
		value = "—"
	}
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Top: 1, Left: 1,
	}))
}

// footerRows: línea separadora + total de registros.
func footerRows(count int) []core.Row {
	return []core.Row{
		line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Total de registros: %d", count), props.Text{
					Size: 8, Top: 2, Color: colorGray,
				}),
			),
		),
	}
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
