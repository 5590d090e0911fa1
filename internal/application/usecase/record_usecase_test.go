package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggbucket/eggbucket-api/internal/application/dto"
	"github.com/eggbucket/eggbucket-api/internal/application/usecase"
	"github.com/eggbucket/eggbucket-api/internal/domain"
	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeRecordRepo repo en memoria indexado por (kind, fecha). No simula
// concurrencia; missReads permite emular la ventana de la carrera
// crear-vs-crear: la lectura no ve el registro pero el "índice único" sí.
type fakeRecordRepo struct {
	byID      map[string]*entity.DailyRecord
	missReads int // las próximas N lecturas por fecha devuelven nil
	creates   int
	updates   int
}

var _ repository.DailyRecordRepository = (*fakeRecordRepo)(nil)

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{byID: make(map[string]*entity.DailyRecord)}
}

func (f *fakeRecordRepo) Create(_ context.Context, rec *entity.DailyRecord) error {
	for _, r := range f.byID {
		if r.Kind == rec.Kind && r.Date == rec.Date {
			return domain.ErrDuplicate
		}
	}
	cp := *rec
	f.byID[rec.ID] = &cp
	f.creates++
	return nil
}

func (f *fakeRecordRepo) GetByID(_ context.Context, kind entity.RecordKind, id string) (*entity.DailyRecord, error) {
	rec, ok := f.byID[id]
	if !ok || rec.Kind != kind {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeRecordRepo) GetByDate(_ context.Context, kind entity.RecordKind, date string, _ bool) (*entity.DailyRecord, error) {
	if f.missReads > 0 {
		f.missReads--
		return nil, nil
	}
	for _, rec := range f.byID {
		if rec.Kind == kind && rec.Date == date {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRecordRepo) Update(_ context.Context, rec *entity.DailyRecord) error {
	if _, ok := f.byID[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *rec
	f.byID[rec.ID] = &cp
	f.updates++
	return nil
}

func (f *fakeRecordRepo) ListAll(_ context.Context, kind entity.RecordKind) ([]*entity.DailyRecord, error) {
	var out []*entity.DailyRecord
	for _, rec := range f.byID {
		if rec.Kind == kind {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeTxRunner pasa el repo directo, sin transacción real.
type fakeTxRunner struct {
	repo repository.DailyRecordRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.DailyRecordRepository) error) error {
	return fn(f.repo)
}

func newUC(repo *fakeRecordRepo) *usecase.RecordUseCase {
	return usecase.NewRecordUseCase(repo, &fakeTxRunner{repo: repo}, nil)
}

func salesPayload(date string, outlets map[string]interface{}) dto.AddRecordRequest {
	return dto.AddRecordRequest{Date: date, Outlets: outlets}
}

// ──────────────────────────────────────────────────────────────────────────────
// Upsert por fecha
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsert_PrimeraCapturaCrea(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)

	resp, created, err := uc.UpsertByDate(context.Background(), entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet A": "100.50", "Outlet B": float64(200)}))

	require.NoError(t, err)
	assert.True(t, created, "primera captura debe crear")
	require.NotNil(t, resp)
	assert.False(t, resp.Merged)

	rec, _ := repo.GetByDate(context.Background(), entity.KindDailySales, "2024-06-01", false)
	require.NotNil(t, rec)
	assert.True(t, decimal.RequireFromString("300.50").Equal(rec.Total))
}

func TestUpsert_SegundaCapturaFusiona(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)
	ctx := context.Background()

	_, _, err := uc.UpsertByDate(ctx, entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet A": "100", "Outlet B": "200"}))
	require.NoError(t, err)

	resp, created, err := uc.UpsertByDate(ctx, entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet B": "500", "Outlet C": "50"}))
	require.NoError(t, err)
	assert.False(t, created, "segunda captura debe fusionar, no crear")
	assert.True(t, resp.Merged)

	rec, _ := repo.GetByDate(ctx, entity.KindDailySales, "2024-06-01", false)
	require.NotNil(t, rec)
	// B sobreescrito (no sumado), A conservado, C agregado
	assert.True(t, decimal.RequireFromString("100").Equal(rec.OutletValues["Outlet A"]))
	assert.True(t, decimal.RequireFromString("500").Equal(rec.OutletValues["Outlet B"]))
	assert.True(t, decimal.RequireFromString("650").Equal(rec.Total))
	assert.Equal(t, 1, repo.creates, "solo debe existir un registro por fecha")
}

func TestUpsert_FechasDistintasNoInterfieren(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)
	ctx := context.Background()

	_, created1, err := uc.UpsertByDate(ctx, entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet A": "100"}))
	require.NoError(t, err)
	_, created2, err := uc.UpsertByDate(ctx, entity.KindDailySales,
		salesPayload("2024-06-02", map[string]interface{}{"Outlet A": "999"}))
	require.NoError(t, err)

	assert.True(t, created1)
	assert.True(t, created2, "otra fecha crea su propio registro")
	assert.Equal(t, 2, repo.creates)
}

// Los daños quedan bloqueados tras la primera captura del día: el segundo
// intento se rechaza completo, sin fusión parcial.
func TestUpsert_DamagesBloqueadoTrasPrimeraCaptura(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)
	ctx := context.Background()

	first := dto.AddRecordRequest{Date: "2024-06-01", Damages: map[string]interface{}{"Outlet A": "5"}}
	_, created, err := uc.UpsertByDate(ctx, entity.KindDailyDamages, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := dto.AddRecordRequest{Date: "2024-06-01", Damages: map[string]interface{}{"Outlet B": "3"}}
	_, _, err = uc.UpsertByDate(ctx, entity.KindDailyDamages, second)
	require.ErrorIs(t, err, domain.ErrEntryLocked)

	rec, _ := repo.GetByDate(ctx, entity.KindDailyDamages, "2024-06-01", false)
	require.NotNil(t, rec)
	assert.Len(t, rec.OutletValues, 1, "el rechazo no debe escribir nada")
}

func TestUpsert_ValoresSuciosDegradanACero(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)

	_, _, err := uc.UpsertByDate(context.Background(), entity.KindCashPayments,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet A": "abc", "Outlet B": "-10", "Outlet C": "40"}))
	require.NoError(t, err)

	rec, _ := repo.GetByDate(context.Background(), entity.KindCashPayments, "2024-06-01", false)
	require.NotNil(t, rec)
	assert.True(t, decimal.Zero.Equal(rec.OutletValues["Outlet A"]))
	assert.True(t, decimal.Zero.Equal(rec.OutletValues["Outlet B"]))
	assert.True(t, decimal.RequireFromString("40").Equal(rec.Total))
}

func TestUpsert_EntradaInvalida(t *testing.T) {
	uc := newUC(newFakeRecordRepo())
	ctx := context.Background()

	_, _, err := uc.UpsertByDate(ctx, entity.KindDailySales, salesPayload("", map[string]interface{}{"A": "1"}))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin fecha")

	_, _, err = uc.UpsertByDate(ctx, entity.KindDailySales, salesPayload("2024-06-01", nil))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin payload")

	_, _, err = uc.UpsertByDate(ctx, "inventada", salesPayload("2024-06-01", map[string]interface{}{"A": "1"}))
	assert.ErrorIs(t, err, domain.ErrNotFound, "kind desconocido")
}

// Carrera crear-vs-crear: el índice único hace fallar el primer insert con
// ErrDuplicate; el reintento encuentra el registro del ganador y fusiona.
func TestUpsert_CarreraDeCreacionReintentaYFusiona(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)
	ctx := context.Background()

	// El "ganador" ya insertó su registro.
	_, _, err := uc.UpsertByDate(ctx, entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet A": "100"}))
	require.NoError(t, err)

	// El "perdedor" no ve el registro en su primer intento (simulado con
	// missReads), choca con el índice único al insertar y el reintento fusiona.
	repo.missReads = 1
	resp, created, err := uc.UpsertByDate(ctx, entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet B": "200"}))

	require.NoError(t, err)
	assert.False(t, created)
	assert.True(t, resp.Merged)
}

// Errores no clasificados como transitorios cortan sin reintentar.
func TestUpsert_ErrorPermanenteNoReintenta(t *testing.T) {
	repo := newFakeRecordRepo()
	boom := errors.New("columna inexistente")
	attempts := 0
	tx := &failingTxRunner{err: boom, attempts: &attempts}
	uc := usecase.NewRecordUseCase(repo, tx, func(error) bool { return false })

	_, _, err := uc.UpsertByDate(context.Background(), entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet A": "1"}))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts, "error permanente no debe reintentarse")
}

type failingTxRunner struct {
	err      error
	attempts *int
}

func (f *failingTxRunner) Run(context.Context, func(repository.DailyRecordRepository) error) error {
	*f.attempts++
	return f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// PATCH y remapeo
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_PatchParcial(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)
	ctx := context.Background()

	resp, _, err := uc.UpsertByDate(ctx, entity.KindDailySales,
		salesPayload("2024-06-01", map[string]interface{}{"Outlet A": "100", "Outlet B": "200"}))
	require.NoError(t, err)

	out, err := uc.Update(ctx, entity.KindDailySales, resp.ID, dto.UpdateRecordRequest{
		Outlets: map[string]interface{}{"Outlet B": "999"},
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("100").Equal(out.Outlets["Outlet A"]), "no mencionado se conserva")
	assert.True(t, decimal.RequireFromString("999").Equal(out.Outlets["Outlet B"]))
	assert.True(t, decimal.RequireFromString("1099").Equal(out.Total))
}

func TestUpdate_IDInexistente(t *testing.T) {
	uc := newUC(newFakeRecordRepo())
	_, err := uc.Update(context.Background(), entity.KindDailySales, "no-existe", dto.UpdateRecordRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemapToOutlets_AjustaTodoElHistorico(t *testing.T) {
	repo := newFakeRecordRepo()
	uc := newUC(repo)
	ctx := context.Background()

	for _, date := range []string{"2024-06-01", "2024-06-02"} {
		_, _, err := uc.UpsertByDate(ctx, entity.KindDailySales,
			salesPayload(date, map[string]interface{}{"Outlet A": "100", "Outlet B": "200"}))
		require.NoError(t, err)
	}

	updated, err := uc.RemapToOutlets(ctx, entity.KindDailySales, []string{"Outlet A", "Outlet C"})
	require.NoError(t, err)
	assert.Equal(t, 2, updated)

	list, err := uc.ListAll(ctx, entity.KindDailySales)
	require.NoError(t, err)
	for _, rec := range list {
		assert.Len(t, rec.Outlets, 2)
		assert.True(t, decimal.RequireFromString("100").Equal(rec.Outlets["Outlet A"]))
		assert.True(t, decimal.Zero.Equal(rec.Outlets["Outlet C"]))
		assert.True(t, decimal.RequireFromString("100").Equal(rec.Total))
	}
}
