package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
	"github.com/eggbucket/eggbucket-api/pkg/jwt"
	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login. El alta de
// signup aplica las mismas reglas que el panel admin (rol válido, zona
// requerida salvo Admin, un Supervisor por zona).
type AuthUseCase struct {
	userRepo repository.UserRepository
	users    *usecase.UserUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, users *usecase.UserUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, users: users, jwtCfg: jwtCfg}
}

// Signup crea una cuenta. Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	return uc.users.Create(ctx, in)
}

// Signin verifica username/password, genera JWT y retorna token + usuario.
// El claim de zona de un Admin sin zona propia queda en la zona por defecto
// para su propia captura de datos.
func (uc *AuthUseCase) Signin(ctx context.Context, in dto.SigninRequest) (*dto.SigninResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	claimZone := user.ZoneID
	if user.Role == entity.RoleAdmin && claimZone == "" {
		claimZone = zone.Default
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, claimZone, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SigninResponse{
		Token: token,
		User: dto.UserResponse{
			Username:  user.Username,
			FullName:  user.FullName,
			Phone:     user.Phone,
			Role:      user.Role,
			ZoneID:    claimZone,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		},
	}, nil
}
