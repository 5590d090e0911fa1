package records_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/eggbucket/eggbucket-api/internal/domain/records"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCoerceValue_TiposYSucios(t *testing.T) {
	assert.True(t, dec("1250.50").Equal(records.CoerceValue("1250.50")), "string numérico")
	assert.True(t, dec("100").Equal(records.CoerceValue(float64(100))), "float64 (JSON number)")
	assert.True(t, dec("7").Equal(records.CoerceValue(7)), "int")
	assert.True(t, decimal.Zero.Equal(records.CoerceValue("abc")), "string no numérico degrada a 0")
	assert.True(t, decimal.Zero.Equal(records.CoerceValue(nil)), "nil degrada a 0")
	assert.True(t, decimal.Zero.Equal(records.CoerceValue(-50.0)), "negativo degrada a 0")
	assert.True(t, decimal.Zero.Equal(records.CoerceValue("-10")), "string negativo degrada a 0")
}

// La fusión es unión de claves con preferencia por el valor entrante: los
// outlets mencionados sobreescriben (no suman) y los no mencionados conservan
// su valor.
func TestMerge_SobreescribeNoSuma(t *testing.T) {
	existing := map[string]decimal.Decimal{
		"Outlet A": dec("100"),
		"Outlet B": dec("200"),
	}
	incoming := map[string]decimal.Decimal{
		"Outlet B": dec("500"),
		"Outlet C": dec("50"),
	}

	merged := records.Merge(existing, incoming)

	assert.Len(t, merged, 3)
	assert.True(t, dec("100").Equal(merged["Outlet A"]), "no mencionado conserva su valor")
	assert.True(t, dec("500").Equal(merged["Outlet B"]), "mencionado sobreescribe, no suma")
	assert.True(t, dec("50").Equal(merged["Outlet C"]), "outlet nuevo entra con su valor")
}

func TestMerge_NoMutaArgumentos(t *testing.T) {
	existing := map[string]decimal.Decimal{"Outlet A": dec("100")}
	incoming := map[string]decimal.Decimal{"Outlet A": dec("999")}

	_ = records.Merge(existing, incoming)

	assert.True(t, dec("100").Equal(existing["Outlet A"]))
	assert.True(t, dec("999").Equal(incoming["Outlet A"]))
}

// Fusionar dos veces el mismo payload da el mismo resultado que fusionarlo
// una vez (reintentos o doble submit no duplican montos).
func TestMerge_Idempotente(t *testing.T) {
	existing := map[string]decimal.Decimal{"Outlet A": dec("100")}
	incoming := map[string]decimal.Decimal{"Outlet A": dec("300"), "Outlet B": dec("40")}

	once := records.Merge(existing, incoming)
	twice := records.Merge(once, incoming)

	assert.Equal(t, len(once), len(twice))
	for name, v := range once {
		assert.True(t, v.Equal(twice[name]), "outlet %s", name)
	}
}

// Claves disjuntas: el total del resultado es la suma de ambos totales.
func TestMerge_DisjuntosSonAditivos(t *testing.T) {
	existing := map[string]decimal.Decimal{"Outlet A": dec("100.25")}
	incoming := map[string]decimal.Decimal{"Outlet B": dec("200.75")}

	merged := records.Merge(existing, incoming)

	assert.True(t, dec("301").Equal(records.Sum(merged)))
}

func TestSum_VacioEsCero(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(records.Sum(nil)))
	assert.True(t, decimal.Zero.Equal(records.Sum(map[string]decimal.Decimal{})))
}
