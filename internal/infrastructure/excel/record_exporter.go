// Package excel genera el export .xlsx de los registros diarios: una fila por
// fecha, una columna por outlet (unión de claves de todos los registros) más
// la columna Total.
package excel

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/eggbucket/eggbucket-api/internal/application/report"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

var _ report.RecordExporter = (*RecordExporter)(nil)

const sheet = "Sheet1"

// RecordExporter implementa report.RecordExporter usando excelize.
type RecordExporter struct{}

// NewRecordExporter construye el exportador.
func NewRecordExporter() *RecordExporter { return &RecordExporter{} }

// ExportRecords genera el workbook y devuelve sus bytes.
func (e *RecordExporter) ExportRecords(_ context.Context, title string, recs []*entity.DailyRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	outlets := outletColumns(recs)

	// Encabezados: Date | <outlet...> | Total
	if err := f.SetCellValue(sheet, "A1", "Date"); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}
	for i, name := range outlets {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		_ = f.SetCellValue(sheet, cell, name)
	}
	totalCol := len(outlets) + 2
	cell, _ := excelize.CoordinatesToCellName(totalCol, 1)
	_ = f.SetCellValue(sheet, cell, "Total")

	// Datos
	for row, rec := range recs {
		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		_ = f.SetCellValue(sheet, cell, rec.Date)
		for i, name := range outlets {
			cell, _ := excelize.CoordinatesToCellName(i+2, row+2)
			if v, ok := rec.OutletValues[name]; ok {
				val, _ := v.Float64()
				_ = f.SetCellValue(sheet, cell, val)
			} else {
				_ = f.SetCellValue(sheet, cell, 0)
			}
		}
		cell, _ = excelize.CoordinatesToCellName(totalCol, row+2)
		total, _ := rec.Total.Float64()
		_ = f.SetCellValue(sheet, cell, total)
	}

	_ = f.SetSheetName(sheet, title)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// outletColumns devuelve la unión ordenada de los nombres de outlet presentes.
func outletColumns(recs []*entity.DailyRecord) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, rec := range recs {
		for name := range rec.OutletValues {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
