package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
)

var _ repository.DailyRecordRepository = (*DailyRecordRepo)(nil)

// DailyRecordRepo implementación del puerto DailyRecordRepository sobre PostgreSQL
// (usable con pool o tx). outlet_values se persiste como JSONB; total como NUMERIC.
// La tabla lleva UNIQUE (kind, entry_date): la unicidad fecha-por-tipo la
// respalda el store, no solo el protocolo.
type DailyRecordRepo struct {
	q Querier
}

// NewDailyRecordRepository construye el adaptador de persistencia para registros diarios. Pasar pool o tx (Querier).
func NewDailyRecordRepository(q Querier) *DailyRecordRepo {
	return &DailyRecordRepo{q: q}
}

// Create persiste un nuevo registro diario.
func (r *DailyRecordRepo) Create(ctx context.Context, rec *entity.DailyRecord) error {
	query := `
		INSERT INTO daily_records (id, kind, entry_date, outlet_values, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, string(rec.Kind), rec.Date, rec.OutletValues, rec.Total, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert daily record: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID dentro de su kind.
func (r *DailyRecordRepo) GetByID(ctx context.Context, kind entity.RecordKind, id string) (*entity.DailyRecord, error) {
	query := `
		SELECT id, kind, entry_date, outlet_values, total, created_at, updated_at
		FROM daily_records WHERE kind = $1 AND id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, string(kind), id), "get daily record")
}

// GetByDate obtiene el registro único de (kind, fecha); nil si no existe.
// Con forUpdate=true bloquea la fila (SELECT ... FOR UPDATE) para serializar
// el ciclo leer-modificar-escribir dentro de la transacción en curso.
func (r *DailyRecordRepo) GetByDate(ctx context.Context, kind entity.RecordKind, date string, forUpdate bool) (*entity.DailyRecord, error) {
	query := `
		SELECT id, kind, entry_date, outlet_values, total, created_at, updated_at
		FROM daily_records WHERE kind = $1 AND entry_date = $2 LIMIT 1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	return r.scanOne(r.q.QueryRow(ctx, query, string(kind), date), "get daily record by date")
}

// Update persiste el estado de un registro (fecha, valores y total) en un solo UPDATE.
func (r *DailyRecordRepo) Update(ctx context.Context, rec *entity.DailyRecord) error {
	query := `
		UPDATE daily_records SET entry_date = $3, outlet_values = $4, total = $5, updated_at = $6
		WHERE kind = $1 AND id = $2`
	tag, err := r.q.Exec(ctx, query,
		string(rec.Kind), rec.ID, rec.Date, rec.OutletValues, rec.Total, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update daily record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll lista todos los registros de un kind ordenados por fecha descendente.
// Sin paginación: el volumen es de una captura diaria por fecha.
func (r *DailyRecordRepo) ListAll(ctx context.Context, kind entity.RecordKind) ([]*entity.DailyRecord, error) {
	query := `
		SELECT id, kind, entry_date, outlet_values, total, created_at, updated_at
		FROM daily_records WHERE kind = $1 ORDER BY entry_date DESC`
	rows, err := r.q.Query(ctx, query, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyRecord
	for rows.Next() {
		var rec entity.DailyRecord
		if err := rows.Scan(&rec.ID, &rec.Kind, &rec.Date, &rec.OutletValues, &rec.Total, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan daily record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

func (r *DailyRecordRepo) scanOne(row pgx.Row, op string) (*entity.DailyRecord, error) {
	var rec entity.DailyRecord
	err := row.Scan(&rec.ID, &rec.Kind, &rec.Date, &rec.OutletValues, &rec.Total, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &rec, nil
}
