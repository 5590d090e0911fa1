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

var _ repository.EggRateRepository = (*EggRateRepo)(nil)

// EggRateRepo implementación del puerto EggRateRepository sobre PostgreSQL.
type EggRateRepo struct {
	q Querier
}

// NewEggRateRepository construye el adaptador de persistencia para tarifas NECC.
func NewEggRateRepository(q Querier) *EggRateRepo {
	return &EggRateRepo{q: q}
}

// Create persiste una nueva tarifa.
func (r *EggRateRepo) Create(ctx context.Context, rate *entity.EggRate) error {
	query := `
		INSERT INTO egg_rates (id, rate_date, rate, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		rate.ID, rate.Date, rate.Rate, rate.Remarks, rate.CreatedAt, rate.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert egg rate: %w", err)
	}
	return nil
}

// GetByID obtiene una tarifa por ID; nil si no existe.
func (r *EggRateRepo) GetByID(ctx context.Context, id string) (*entity.EggRate, error) {
	query := `SELECT id, rate_date, rate, remarks, created_at, updated_at FROM egg_rates WHERE id = $1`
	var er entity.EggRate
	err := r.q.QueryRow(ctx, query, id).Scan(&er.ID, &er.Date, &er.Rate, &er.Remarks, &er.CreatedAt, &er.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get egg rate: %w", err)
	}
	return &er, nil
}

// GetByDate obtiene la tarifa publicada para una fecha; nil si no existe.
func (r *EggRateRepo) GetByDate(ctx context.Context, date string) (*entity.EggRate, error) {
	query := `SELECT id, rate_date, rate, remarks, created_at, updated_at FROM egg_rates WHERE rate_date = $1 LIMIT 1`
	var er entity.EggRate
	err := r.q.QueryRow(ctx, query, date).Scan(&er.ID, &er.Date, &er.Rate, &er.Remarks, &er.CreatedAt, &er.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get egg rate by date: %w", err)
	}
	return &er, nil
}

// Update actualiza una tarifa.
func (r *EggRateRepo) Update(ctx context.Context, rate *entity.EggRate) error {
	query := `
		UPDATE egg_rates SET rate_date = $2, rate = $3, remarks = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, rate.ID, rate.Date, rate.Rate, rate.Remarks, rate.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update egg rate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll lista todas las tarifas ordenadas por fecha descendente.
func (r *EggRateRepo) ListAll(ctx context.Context) ([]*entity.EggRate, error) {
	query := `SELECT id, rate_date, rate, remarks, created_at, updated_at FROM egg_rates ORDER BY rate_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list egg rates: %w", err)
	}
	defer rows.Close()
	var list []*entity.EggRate
	for rows.Next() {
		var er entity.EggRate
		if err := rows.Scan(&er.ID, &er.Date, &er.Rate, &er.Remarks, &er.CreatedAt, &er.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan egg rate: %w", err)
		}
		list = append(list, &er)
	}
	return list, rows.Err()
}
