// Package report expone los casos de uso de exportación: workbook .xlsx por
// tipo de entidad y PDF de resumen diario.
package report

import (
	"context"
	"fmt"

	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
)

// UseCase casos de uso de exportación y reporte.
type UseCase struct {
	recordRepo repository.DailyRecordRepository
	rateRepo   repository.EggRateRepository
	exporter   RecordExporter
	generator  DailyReportGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(recordRepo repository.DailyRecordRepository, rateRepo repository.EggRateRepository,
	exporter RecordExporter, generator DailyReportGenerator) *UseCase {
	return &UseCase{recordRepo: recordRepo, rateRepo: rateRepo, exporter: exporter, generator: generator}
}

// ExportKind genera el .xlsx con todos los registros de un kind y sugiere el nombre de archivo.
func (uc *UseCase) ExportKind(ctx context.Context, kind entity.RecordKind) (data []byte, filename string, err error) {
	if _, ok := entity.Kinds[kind]; !ok {
		return nil, "", domain.ErrNotFound
	}
	recs, err := uc.recordRepo.ListAll(ctx, kind)
	if err != nil {
		return nil, "", err
	}
	data, err = uc.exporter.ExportRecords(ctx, string(kind), recs)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("%s.xlsx", kind), nil
}

// DailyReport arma el resumen de una fecha (ventas, pagos, daños y tarifa NECC)
// y genera su PDF. Si no hay nada capturado para esa fecha devuelve ErrNotFound.
func (uc *UseCase) DailyReport(ctx context.Context, date string) ([]byte, error) {
	if date == "" {
		return nil, domain.ErrInvalidInput
	}
	summary := &DailySummary{Date: date}

	var err error
	if summary.Sales, err = uc.recordRepo.GetByDate(ctx, entity.KindDailySales, date, false); err != nil {
		return nil, err
	}
	if summary.Cash, err = uc.recordRepo.GetByDate(ctx, entity.KindCashPayments, date, false); err != nil {
		return nil, err
	}
	if summary.Digital, err = uc.recordRepo.GetByDate(ctx, entity.KindDigitalPayments, date, false); err != nil {
		return nil, err
	}
	if summary.Damages, err = uc.recordRepo.GetByDate(ctx, entity.KindDailyDamages, date, false); err != nil {
		return nil, err
	}
	if summary.NECCRate, err = uc.rateRepo.GetByDate(ctx, date); err != nil {
		return nil, err
	}

	if summary.Sales == nil && summary.Cash == nil && summary.Digital == nil && summary.Damages == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateDailyReport(ctx, summary)
}
