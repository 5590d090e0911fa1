package repository

import (
	"context"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// EggRateRepository define el puerto de persistencia para tarifas NECC.
type EggRateRepository interface {
	Create(ctx context.Context, rate *entity.EggRate) error
	GetByID(ctx context.Context, id string) (*entity.EggRate, error)
	GetByDate(ctx context.Context, date string) (*entity.EggRate, error)
	Update(ctx context.Context, rate *entity.EggRate) error
	ListAll(ctx context.Context) ([]*entity.EggRate, error)
}
