package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

// UserUseCase casos de uso de administración de usuarios (solo Admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// ValidateNewUser aplica las reglas de alta compartidas por signup y el panel
// admin: rol conocido, zona requerida salvo Admin y a lo sumo un Supervisor
// por zona (chequeo de aplicación; la zona normalizada no es clave del store).
func (uc *UserUseCase) ValidateNewUser(ctx context.Context, role, zoneID string) error {
	if !entity.ValidRole(role) {
		return domain.ErrInvalidInput
	}
	if role != entity.RoleAdmin && zone.Normalize(zoneID) == "" {
		return domain.ErrInvalidInput
	}
	if role == entity.RoleSupervisor {
		supervisors, err := uc.repo.ListByRole(ctx, entity.RoleSupervisor)
		if err != nil {
			return err
		}
		for _, s := range supervisors {
			if zone.Match(s.ZoneID, zoneID) {
				return domain.ErrZoneHasSupervisor
			}
		}
	}
	return nil
}

// Create da de alta un usuario: valida reglas, hashea el password y persiste.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.ValidateNewUser(ctx, in.Role, in.ZoneID); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		FullName:     in.FullName,
		Phone:        in.Phone,
		Role:         in.Role,
		ZoneID:       in.ZoneID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListAll lista usuarios con paginación.
func (uc *UserUseCase) ListAll(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListAll(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// ListByRole lista los usuarios de un rol (listados del panel admin).
func (uc *UserUseCase) ListByRole(ctx context.Context, role string) ([]dto.UserResponse, error) {
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return toUserResponses(list), nil
}

// Delete elimina un usuario por username.
func (uc *UserUseCase) Delete(ctx context.Context, username string) error {
	if username == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, username)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Username:  u.Username,
		FullName:  u.FullName,
		Phone:     u.Phone,
		Role:      u.Role,
		ZoneID:    u.ZoneID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(list []*entity.User) []dto.UserResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items
}
