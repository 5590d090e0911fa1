package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

var _ repository.OutletRepository = (*OutletRepo)(nil)

// OutletRepo implementación del puerto OutletRepository sobre PostgreSQL.
// Además de zone_id crudo se persiste zone_norm (forma canónica, indexada)
// para que el filtrado por zona sea una consulta y no un scan en memoria.
type OutletRepo struct {
	q Querier
}

// NewOutletRepository construye el adaptador de persistencia para outlets.
func NewOutletRepository(q Querier) *OutletRepo {
	return &OutletRepo{q: q}
}

const outletColumns = `id, name, area, zone_id, status, review_status, contact, phone, created_by, created_at, updated_at`

// Create persiste un nuevo outlet. El ID lo trae el llamador (clave natural).
func (r *OutletRepo) Create(ctx context.Context, outlet *entity.Outlet) error {
	query := `
		INSERT INTO outlets (id, name, area, zone_id, zone_norm, status, review_status, contact, phone, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		outlet.ID, outlet.Name, outlet.Area, outlet.ZoneID, zone.Normalize(outlet.ZoneID),
		outlet.Status, outlet.ReviewStatus, outlet.Contact, outlet.Phone, outlet.CreatedBy,
		outlet.CreatedAt, outlet.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert outlet: %w", err)
	}
	return nil
}

// GetByID obtiene un outlet por ID; nil si no existe.
func (r *OutletRepo) GetByID(ctx context.Context, id string) (*entity.Outlet, error) {
	query := `SELECT ` + outletColumns + ` FROM outlets WHERE id = $1`
	var o entity.Outlet
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Area, &o.ZoneID, &o.Status, &o.ReviewStatus,
		&o.Contact, &o.Phone, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outlet: %w", err)
	}
	return &o, nil
}

// Update actualiza un outlet en sitio (incluye zone_norm recalculado).
func (r *OutletRepo) Update(ctx context.Context, outlet *entity.Outlet) error {
	query := `
		UPDATE outlets SET name = $2, area = $3, zone_id = $4, zone_norm = $5, status = $6,
			review_status = $7, contact = $8, phone = $9, updated_at = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		outlet.ID, outlet.Name, outlet.Area, outlet.ZoneID, zone.Normalize(outlet.ZoneID),
		outlet.Status, outlet.ReviewStatus, outlet.Contact, outlet.Phone, outlet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update outlet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll lista todos los outlets.
func (r *OutletRepo) ListAll(ctx context.Context) ([]*entity.Outlet, error) {
	query := `SELECT ` + outletColumns + ` FROM outlets ORDER BY name`
	return r.list(ctx, query)
}

// ListByZone lista los outlets cuya zona normalizada coincide; opcionalmente
// restringe a los creados por una identidad. Zona desconocida => lista vacía.
func (r *OutletRepo) ListByZone(ctx context.Context, normalizedZone, createdBy string) ([]*entity.Outlet, error) {
	if normalizedZone == "" {
		return []*entity.Outlet{}, nil
	}
	query := `SELECT ` + outletColumns + ` FROM outlets WHERE zone_norm = $1`
	args := []any{normalizedZone}
	if createdBy != "" {
		query += ` AND created_by = $2`
		args = append(args, createdBy)
	}
	query += ` ORDER BY name`
	return r.list(ctx, query, args...)
}

// Delete elimina un outlet por ID (borrado duro).
func (r *OutletRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM outlets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete outlet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OutletRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Outlet, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}
	defer rows.Close()
	list := []*entity.Outlet{}
	for rows.Next() {
		var o entity.Outlet
		if err := rows.Scan(&o.ID, &o.Name, &o.Area, &o.ZoneID, &o.Status, &o.ReviewStatus,
			&o.Contact, &o.Phone, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
