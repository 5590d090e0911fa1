package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/records"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
)

// RecordTxRunner ejecuta fn dentro de una transacción del store con un repo
// atado a ella. Lo implementa postgres.TxRunner.
type RecordTxRunner interface {
	Run(ctx context.Context, fn func(recordRepo repository.DailyRecordRepository) error) error
}

// RecordUseCase implementa el upsert por fecha de los agregados diarios:
// exactamente un registro por (kind, fecha); crear si no existe, fusionar (o
// rechazar, según la política del kind) si existe.
type RecordUseCase struct {
	repo        repository.DailyRecordRepository // lecturas fuera de tx
	tx          RecordTxRunner
	isTransient func(error) bool // clasificador de errores de store reintetables
}

// NewRecordUseCase construye el caso de uso. isTransient decide qué fallos del
// store se reintentan con backoff (postgres.IsTransient en producción).
func NewRecordUseCase(repo repository.DailyRecordRepository, tx RecordTxRunner, isTransient func(error) bool) *RecordUseCase {
	if isTransient == nil {
		isTransient = func(error) bool { return false }
	}
	return &RecordUseCase{repo: repo, tx: tx, isTransient: isTransient}
}

// retryPolicy acota los reintentos: fallos transitorios del store se reintentan
// con backoff exponencial; todo lo demás corta de inmediato.
func (uc *RecordUseCase) retryPolicy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second
	return backoff.WithContext(b, ctx)
}

// UpsertByDate crea o fusiona el registro de una fecha. Devuelve created=true
// cuando se insertó un registro nuevo (201) y false cuando hubo fusión (200).
// Con política RejectOnConflict un duplicado devuelve ErrEntryLocked sin escribir.
func (uc *RecordUseCase) UpsertByDate(ctx context.Context, kind entity.RecordKind, in dto.AddRecordRequest) (resp *dto.UpsertResponse, created bool, err error) {
	desc, ok := entity.Kinds[kind]
	if !ok {
		return nil, false, domain.ErrNotFound
	}
	raw := in.Values(desc.PayloadKey)
	if in.Date == "" || len(raw) == 0 {
		return nil, false, domain.ErrInvalidInput
	}
	incoming := records.CoerceValues(raw)

	op := func() error {
		return uc.tx.Run(ctx, func(repo repository.DailyRecordRepository) error {
			existing, err := repo.GetByDate(ctx, kind, in.Date, true)
			if err != nil {
				return err
			}
			now := time.Now()

			if existing == nil {
				rec := &entity.DailyRecord{
					ID:           uuid.New().String(),
					Kind:         kind,
					Date:         in.Date,
					OutletValues: incoming,
					Total:        records.Sum(incoming),
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				if err := repo.Create(ctx, rec); err != nil {
					return err
				}
				resp = &dto.UpsertResponse{ID: rec.ID, Message: "registro diario creado"}
				created = true
				return nil
			}

			if desc.Policy == entity.RejectOnConflict {
				return domain.ErrEntryLocked
			}

			existing.OutletValues = records.Merge(existing.OutletValues, incoming)
			existing.Total = records.Sum(existing.OutletValues)
			existing.UpdatedAt = now
			if err := repo.Update(ctx, existing); err != nil {
				return err
			}
			resp = &dto.UpsertResponse{ID: existing.ID, Message: "fusionado con el registro existente", Merged: true}
			created = false
			return nil
		})
	}

	// ErrDuplicate aquí es la carrera crear-vs-crear resuelta por el índice
	// único: al reintentar, el registro ya existe y se fusiona (o se rechaza).
	retryable := func() error {
		err := op()
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrDuplicate), uc.isTransient(err):
			return err
		default:
			return backoff.Permanent(err)
		}
	}
	// backoff.Retry desenvuelve los Permanent antes de devolverlos.
	if err := backoff.Retry(retryable, uc.retryPolicy(ctx)); err != nil {
		return nil, false, err
	}
	return resp, created, nil
}

// ListAll lista los registros de un kind ordenados por fecha descendente.
func (uc *RecordUseCase) ListAll(ctx context.Context, kind entity.RecordKind) ([]dto.RecordResponse, error) {
	if _, ok := entity.Kinds[kind]; !ok {
		return nil, domain.ErrNotFound
	}
	list, err := uc.repo.ListAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toRecordResponse(rec))
	}
	return items, nil
}

// Update aplica un PATCH parcial por id. Si cambian los valores por outlet se
// reemplazan los provistos (mismo contrato del upsert) y se recalcula el total.
func (uc *RecordUseCase) Update(ctx context.Context, kind entity.RecordKind, id string, in dto.UpdateRecordRequest) (*dto.RecordResponse, error) {
	desc, ok := entity.Kinds[kind]
	if !ok {
		return nil, domain.ErrNotFound
	}
	var out *dto.RecordResponse
	err := uc.tx.Run(ctx, func(repo repository.DailyRecordRepository) error {
		rec, err := repo.GetByID(ctx, kind, id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if in.Date != nil && *in.Date != "" {
			rec.Date = *in.Date
		}
		raw := in.Outlets
		if desc.PayloadKey == "damages" && in.Damages != nil {
			raw = in.Damages
		}
		if len(raw) > 0 {
			rec.OutletValues = records.Merge(rec.OutletValues, records.CoerceValues(raw))
			rec.Total = records.Sum(rec.OutletValues)
		}
		rec.UpdatedAt = time.Now()
		if err := repo.Update(ctx, rec); err != nil {
			return err
		}
		out = toRecordResponse(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemapToOutlets ajusta todo el histórico de un kind al conjunto de outlets
// dado: claves nuevas entran en 0, removidas se descartan, total recalculado.
func (uc *RecordUseCase) RemapToOutlets(ctx context.Context, kind entity.RecordKind, outletNames []string) (int, error) {
	if _, ok := entity.Kinds[kind]; !ok {
		return 0, domain.ErrNotFound
	}
	var updated int
	err := uc.tx.Run(ctx, func(repo repository.DailyRecordRepository) error {
		recs, err := repo.ListAll(ctx, kind)
		if err != nil {
			return err
		}
		now := time.Now()
		for _, rec := range records.Remap(recs, outletNames) {
			rec.UpdatedAt = now
			if err := repo.Update(ctx, rec); err != nil {
				return err
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func toRecordResponse(rec *entity.DailyRecord) *dto.RecordResponse {
	if rec == nil {
		return nil
	}
	return &dto.RecordResponse{
		ID:        rec.ID,
		Date:      rec.Date,
		Outlets:   rec.OutletValues,
		Total:     rec.Total,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
