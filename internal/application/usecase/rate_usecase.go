package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/records"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
)

// RateUseCase casos de uso de tarifas NECC.
type RateUseCase struct {
	repo repository.EggRateRepository
}

// NewRateUseCase construye el caso de uso.
func NewRateUseCase(repo repository.EggRateRepository) *RateUseCase {
	return &RateUseCase{repo: repo}
}

// Create publica la tarifa de una fecha. El valor llega crudo (los clientes la
// envían como string) y se coerce igual que los montos por outlet.
func (uc *RateUseCase) Create(ctx context.Context, in dto.CreateRateRequest) (*dto.RateResponse, error) {
	if in.Date == "" || in.Rate == nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rate := &entity.EggRate{
		ID:        uuid.New().String(),
		Date:      in.Date,
		Rate:      records.CoerceValue(in.Rate),
		Remarks:   in.Remarks,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// Update aplica un PATCH parcial a una tarifa.
func (uc *RateUseCase) Update(ctx context.Context, id string, in dto.UpdateRateRequest) (*dto.RateResponse, error) {
	rate, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil && *in.Date != "" {
		rate.Date = *in.Date
	}
	if in.Rate != nil {
		rate.Rate = records.CoerceValue(in.Rate)
	}
	if in.Remarks != nil {
		rate.Remarks = *in.Remarks
	}
	rate.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, rate); err != nil {
		return nil, err
	}
	return toRateResponse(rate), nil
}

// ListAll lista todas las tarifas ordenadas por fecha descendente.
func (uc *RateUseCase) ListAll(ctx context.Context) ([]dto.RateResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RateResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRateResponse(r))
	}
	return items, nil
}

func toRateResponse(r *entity.EggRate) *dto.RateResponse {
	if r == nil {
		return nil
	}
	return &dto.RateResponse{
		ID:        r.ID,
		Date:      r.Date,
		Rate:      r.Rate,
		Remarks:   r.Remarks,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
