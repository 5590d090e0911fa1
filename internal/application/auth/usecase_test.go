package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggbucket/eggbucket-api/internal/application/auth"
	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
	pkgjwt "github.com/eggbucket/eggbucket-api/pkg/jwt"
	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

// memUserRepo repo en memoria con lo mínimo que necesita auth.
type memUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	m.users[u.Username] = &cp
	return nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) Update(context.Context, *entity.User) error { return nil }

func (m *memUserRepo) ListAll(context.Context, int, int) ([]*entity.User, error) { return nil, nil }

func (m *memUserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memUserRepo) Delete(context.Context, string) error { return nil }

var testCfg = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 30, Issuer: "eggbucket-test"}

func newAuthUC(repo repository.UserRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, usecase.NewUserUseCase(repo), testCfg)
}

func signup(t *testing.T, uc *auth.AuthUseCase, username, role, zoneID string) {
	t.Helper()
	_, err := uc.Signup(context.Background(), dto.CreateUserRequest{
		Username: username,
		Password: "contrasena-larga",
		Role:     role,
		ZoneID:   zoneID,
	})
	require.NoError(t, err)
}

func TestSignin_TokenConClaims(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)
	signup(t, uc, "agente1", entity.RoleDataAgent, "Zone 2")

	out, err := uc.Signin(context.Background(), dto.SigninRequest{Username: "agente1", Password: "contrasena-larga"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "Zone 2", out.User.ZoneID)

	username, role, z, err := pkgjwt.Parse(testCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "agente1", username)
	assert.Equal(t, entity.RoleDataAgent, role)
	assert.Equal(t, "Zone 2", z)
}

// Un Admin sin zona propia captura datos bajo la zona por defecto: el claim
// sale con zone.Default, no vacío.
func TestSignin_AdminSinZonaUsaDefault(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)
	signup(t, uc, "admin1", entity.RoleAdmin, "")

	out, err := uc.Signin(context.Background(), dto.SigninRequest{Username: "admin1", Password: "contrasena-larga"})
	require.NoError(t, err)

	_, _, z, err := pkgjwt.Parse(testCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, zone.Default, z)
}

func TestSignin_CredencialesInvalidas(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)
	signup(t, uc, "agente1", entity.RoleDataAgent, "Zone 2")
	ctx := context.Background()

	_, err := uc.Signin(ctx, dto.SigninRequest{Username: "agente1", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Signin(ctx, dto.SigninRequest{Username: "no-existe", Password: "contrasena-larga"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Signup aplica las mismas reglas que el alta del panel admin.
func TestSignup_ReglasDeAlta(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)
	ctx := context.Background()

	signup(t, uc, "super1", entity.RoleSupervisor, "Zone 1")

	_, err := uc.Signup(ctx, dto.CreateUserRequest{
		Username: "super2",
		Password: "contrasena-larga",
		Role:     entity.RoleSupervisor,
		ZoneID:   "zone1",
	})
	assert.ErrorIs(t, err, domain.ErrZoneHasSupervisor)
}
