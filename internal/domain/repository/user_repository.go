package repository

import (
	"context"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Username es la clave natural.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
	Delete(ctx context.Context, username string) error
}
