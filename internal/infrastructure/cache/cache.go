// Package cache implementa el espejo de corta vida de la lista de outlets.
// Reemplaza al espejo persistido del cliente: invalidación explícita en cada
// mutación de outlets y TTL como red de seguridad; nunca es fuente de verdad.
package cache

import (
	"context"
	"time"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// OutletCache es el contrato mínimo que necesita el caso de uso de outlets.
type OutletCache interface {
	Get(ctx context.Context, key string) ([]*entity.Outlet, bool, error)
	Set(ctx context.Context, key string, outlets []*entity.Outlet, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// NoopOutletCache se usa cuando Redis no está configurado: siempre miss.
type NoopOutletCache struct{}

func (NoopOutletCache) Get(_ context.Context, _ string) ([]*entity.Outlet, bool, error) {
	return nil, false, nil
}

func (NoopOutletCache) Set(_ context.Context, _ string, _ []*entity.Outlet, _ time.Duration) error {
	return nil
}

func (NoopOutletCache) Invalidate(_ context.Context) error {
	return nil
}
