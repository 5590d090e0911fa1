package usecase

import (
	"context"
	"time"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
	"github.com/eggbucket/eggbucket-api/internal/infrastructure/cache"
	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

// OutletUseCase casos de uso CRUD para outlets, con caché de listas de corta
// vida. Toda mutación invalida el caché completo; el caché nunca es fuente de
// verdad, solo evita repetir la consulta en los formularios de captura.
type OutletUseCase struct {
	repo     repository.OutletRepository
	cache    cache.OutletCache
	cacheTTL time.Duration
}

// NewOutletUseCase construye el caso de uso.
func NewOutletUseCase(repo repository.OutletRepository, c cache.OutletCache, ttl time.Duration) *OutletUseCase {
	if c == nil {
		c = cache.NoopOutletCache{}
	}
	return &OutletUseCase{repo: repo, cache: c, cacheTTL: ttl}
}

// Create registra un outlet. Supervisor y DataAgent solo pueden crear dentro
// de su propia zona; Viewer no crea.
func (uc *OutletUseCase) Create(ctx context.Context, caller Caller, in dto.CreateOutletRequest) (*dto.OutletResponse, error) {
	if in.ID == "" || in.Name == "" || in.Area == "" || in.ZoneID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !caller.CanAccessZone(in.ZoneID) {
		return nil, domain.ErrForbidden
	}
	status := in.Status
	if status == "" {
		status = entity.OutletStatusActive
	}
	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = caller.Username
	}
	now := time.Now()
	outlet := &entity.Outlet{
		ID:           in.ID,
		Name:         in.Name,
		Area:         in.Area,
		ZoneID:       in.ZoneID,
		Status:       status,
		ReviewStatus: in.ReviewStatus,
		Contact:      in.Contact,
		Phone:        in.Phone,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, outlet); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx)
	return toOutletResponse(outlet), nil
}

// ListAll lista todos los outlets (vía caché).
func (uc *OutletUseCase) ListAll(ctx context.Context) ([]dto.OutletResponse, error) {
	if cached, ok, err := uc.cache.Get(ctx, "all"); err == nil && ok {
		return toOutletResponses(cached), nil
	}
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	_ = uc.cache.Set(ctx, "all", list, uc.cacheTTL)
	return toOutletResponses(list), nil
}

// ListByZone lista los outlets de una zona (comparación normalizada);
// createdBy restringe opcionalmente a los creados por esa identidad.
// Zona desconocida o malformada devuelve lista vacía, nunca error.
func (uc *OutletUseCase) ListByZone(ctx context.Context, caller Caller, zoneID, createdBy string) ([]dto.OutletResponse, error) {
	if !caller.CanAccessZone(zoneID) {
		// un no-admin solo consulta su propia zona
		zoneID = caller.Zone
	}
	norm := zone.Normalize(zoneID)
	if norm == "" {
		return []dto.OutletResponse{}, nil
	}
	key := "zone:" + norm
	if createdBy != "" {
		key += ":by:" + createdBy
	}
	if cached, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		return toOutletResponses(cached), nil
	}
	list, err := uc.repo.ListByZone(ctx, norm, createdBy)
	if err != nil {
		return nil, err
	}
	_ = uc.cache.Set(ctx, key, list, uc.cacheTTL)
	return toOutletResponses(list), nil
}

// ActiveOutletNames devuelve los nombres de los outlets activos (entrada del remap).
func (uc *OutletUseCase) ActiveOutletNames(ctx context.Context) ([]string, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(list))
	for _, o := range list {
		if o.Status == entity.OutletStatusActive {
			names = append(names, o.Name)
		}
	}
	return names, nil
}

// Update aplica un PATCH parcial. Fuera de su zona solo opera un Admin.
func (uc *OutletUseCase) Update(ctx context.Context, caller Caller, id string, in dto.UpdateOutletRequest) (*dto.OutletResponse, error) {
	outlet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.CanAccessZone(outlet.ZoneID) {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		outlet.Name = *in.Name
	}
	if in.Area != nil {
		outlet.Area = *in.Area
	}
	if in.ZoneID != nil {
		if !caller.CanAccessZone(*in.ZoneID) {
			return nil, domain.ErrForbidden
		}
		outlet.ZoneID = *in.ZoneID
	}
	if in.Status != nil {
		outlet.Status = *in.Status
	}
	if in.ReviewStatus != nil {
		outlet.ReviewStatus = *in.ReviewStatus
	}
	if in.Contact != nil {
		outlet.Contact = *in.Contact
	}
	if in.Phone != nil {
		outlet.Phone = *in.Phone
	}
	outlet.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, outlet); err != nil {
		return nil, err
	}
	_ = uc.cache.Invalidate(ctx)
	return toOutletResponse(outlet), nil
}

// Delete elimina un outlet por ID (borrado duro). Fuera de su zona solo Admin.
func (uc *OutletUseCase) Delete(ctx context.Context, caller Caller, id string) error {
	outlet, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if outlet == nil {
		return domain.ErrNotFound
	}
	if !caller.CanAccessZone(outlet.ZoneID) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = uc.cache.Invalidate(ctx)
	return nil
}

func toOutletResponse(o *entity.Outlet) *dto.OutletResponse {
	if o == nil {
		return nil
	}
	return &dto.OutletResponse{
		ID:           o.ID,
		Name:         o.Name,
		Area:         o.Area,
		ZoneID:       o.ZoneID,
		Status:       o.Status,
		ReviewStatus: o.ReviewStatus,
		Contact:      o.Contact,
		Phone:        o.Phone,
		CreatedBy:    o.CreatedBy,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOutletResponses(list []*entity.Outlet) []dto.OutletResponse {
	items := make([]dto.OutletResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOutletResponse(o))
	}
	return items
}
