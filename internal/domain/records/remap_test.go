package records_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
	"github.com/eggbucket/eggbucket-api/internal/domain/records"
)

// Tras el remapeo cada registro tiene exactamente las claves del padrón nuevo:
// las retenidas conservan su valor, las nuevas entran en 0, las removidas se
// descartan y el total se recalcula.
func TestRemap_ClavesExactas(t *testing.T) {
	recs := []*entity.DailyRecord{
		{
			ID:   "r1",
			Kind: entity.KindDailySales,
			Date: "2024-06-01",
			OutletValues: map[string]decimal.Decimal{
				"Outlet A": dec("100"),
				"Outlet B": dec("200"), // será removido
			},
			Total: dec("300"),
		},
	}

	out := records.Remap(recs, []string{"Outlet A", "Outlet C"})
	require.Len(t, out, 1)

	got := out[0]
	assert.Len(t, got.OutletValues, 2)
	assert.True(t, dec("100").Equal(got.OutletValues["Outlet A"]), "retenido conserva su valor")
	assert.True(t, decimal.Zero.Equal(got.OutletValues["Outlet C"]), "nuevo entra en 0")
	_, removed := got.OutletValues["Outlet B"]
	assert.False(t, removed, "removido se descarta")
	assert.True(t, dec("100").Equal(got.Total), "total recalculado sin el removido")
}

func TestRemap_NoMutaOriginales(t *testing.T) {
	rec := &entity.DailyRecord{
		ID:           "r1",
		OutletValues: map[string]decimal.Decimal{"Outlet A": dec("100")},
		Total:        dec("100"),
	}

	_ = records.Remap([]*entity.DailyRecord{rec}, []string{"Outlet B"})

	assert.True(t, dec("100").Equal(rec.OutletValues["Outlet A"]))
	assert.True(t, dec("100").Equal(rec.Total))
}

func TestRemap_PadronVacioDejaRegistrosEnCero(t *testing.T) {
	recs := []*entity.DailyRecord{
		{ID: "r1", OutletValues: map[string]decimal.Decimal{"Outlet A": dec("100")}, Total: dec("100")},
	}

	out := records.Remap(recs, nil)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].OutletValues)
	assert.True(t, decimal.Zero.Equal(out[0].Total))
}
