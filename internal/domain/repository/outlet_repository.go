package repository

import (
	"context"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// OutletRepository define el puerto de persistencia para outlets.
// ListByZone filtra por zona normalizada en el store (columna indexada),
// no con un scan completo en memoria.
type OutletRepository interface {
	Create(ctx context.Context, outlet *entity.Outlet) error
	GetByID(ctx context.Context, id string) (*entity.Outlet, error)
	Update(ctx context.Context, outlet *entity.Outlet) error
	ListAll(ctx context.Context) ([]*entity.Outlet, error)
	ListByZone(ctx context.Context, normalizedZone, createdBy string) ([]*entity.Outlet, error)
	Delete(ctx context.Context, id string) error
}
