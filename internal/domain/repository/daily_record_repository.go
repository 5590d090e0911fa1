package repository

import (
	"context"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// DailyRecordRepository define el puerto de persistencia para los agregados
// diarios (DIP). GetByDate con forUpdate=true debe bloquear la fila dentro de
// la transacción en curso para serializar el ciclo leer-modificar-escribir.
type DailyRecordRepository interface {
	Create(ctx context.Context, rec *entity.DailyRecord) error
	GetByID(ctx context.Context, kind entity.RecordKind, id string) (*entity.DailyRecord, error)
	GetByDate(ctx context.Context, kind entity.RecordKind, date string, forUpdate bool) (*entity.DailyRecord, error)
	Update(ctx context.Context, rec *entity.DailyRecord) error
	ListAll(ctx context.Context, kind entity.RecordKind) ([]*entity.DailyRecord, error)
}
