package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
)

// fakeUserRepo repo en memoria indexado por username.
type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := f.users[u.Username]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func (f *fakeUserRepo) ListAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeUserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		if u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, username string) error {
	if _, ok := f.users[username]; !ok {
		return domain.ErrUserNotFound
	}
	delete(f.users, username)
	return nil
}

func newUserReq(username, role, zoneID string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Username: username,
		Password: "contrasena-larga",
		Role:     role,
		ZoneID:   zoneID,
	}
}

func TestUserCreate_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(context.Background(), newUserReq("agente1", entity.RoleDataAgent, "Zone 1"))
	require.NoError(t, err)

	stored := repo.users["agente1"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "contrasena-larga", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contrasena-larga")))
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, newUserReq("agente1", entity.RoleDataAgent, "Zone 1"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, newUserReq("agente1", entity.RoleViewer, "Zone 2"))
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUserCreate_RolDesconocido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.Create(context.Background(), newUserReq("x", "SuperAdmin", "Zone 1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserCreate_ZonaRequeridaSalvoAdmin(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	ctx := context.Background()

	_, err := uc.Create(ctx, newUserReq("agente1", entity.RoleDataAgent, ""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no-admin sin zona")

	_, err = uc.Create(ctx, newUserReq("admin1", entity.RoleAdmin, ""))
	assert.NoError(t, err, "Admin no necesita zona")
}

// A lo sumo un Supervisor por zona; la comparación de zonas es normalizada,
// así que "zone1" y "Zone 1" cuentan como la misma zona.
func TestUserCreate_UnSupervisorPorZona(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, newUserReq("super1", entity.RoleSupervisor, "Zone 1"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, newUserReq("super2", entity.RoleSupervisor, "zone1"))
	assert.ErrorIs(t, err, domain.ErrZoneHasSupervisor)

	_, err = uc.Create(ctx, newUserReq("super3", entity.RoleSupervisor, "Zone 2"))
	assert.NoError(t, err, "otra zona sí admite supervisor")
}

func TestUserListByRole_RolInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.ListByRole(context.Background(), "gerente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserDelete(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, newUserReq("agente1", entity.RoleDataAgent, "Zone 1"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "agente1"))
	assert.ErrorIs(t, uc.Delete(ctx, "agente1"), domain.ErrUserNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, ""), domain.ErrInvalidInput)
}
