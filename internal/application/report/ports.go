package report

import (
	"context"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// RecordExporter genera el workbook .xlsx de los registros de un tipo de entidad.
// Lo implementa infrastructure/excel (excelize).
type RecordExporter interface {
	ExportRecords(ctx context.Context, title string, recs []*entity.DailyRecord) ([]byte, error)
}

// DailySummary agrupa todo lo capturado para una fecha (entrada del PDF).
type DailySummary struct {
	Date     string
	Sales    *entity.DailyRecord
	Cash     *entity.DailyRecord
	Digital  *entity.DailyRecord
	Damages  *entity.DailyRecord
	NECCRate *entity.EggRate
}

// DailyReportGenerator genera la representación PDF del resumen diario.
// Lo implementa infrastructure/pdf (Maroto v2).
type DailyReportGenerator interface {
	GenerateDailyReport(ctx context.Context, summary *DailySummary) ([]byte, error)
}
