package records

import (
	"github.com/shopspring/decimal"

	"github.com/eggbucket/eggbucket-api/internal/domain/entity"
)

// Remap ajusta registros históricos a un nuevo conjunto de outlets: cada
// registro de salida tiene exactamente las claves de newOutletNames, las claves
// retenidas conservan su valor, las nuevas entran en 0 y las removidas se
// descartan. Total se recalcula. Función pura: devuelve copias.
func Remap(recs []*entity.DailyRecord, newOutletNames []string) []*entity.DailyRecord {
	out := make([]*entity.DailyRecord, 0, len(recs))
	for _, rec := range recs {
		values := make(map[string]decimal.Decimal, len(newOutletNames))
		for _, name := range newOutletNames {
			if v, ok := rec.OutletValues[name]; ok {
				values[name] = v
			} else {
				values[name] = decimal.Zero
			}
		}
		remapped := *rec
		remapped.OutletValues = values
		remapped.Total = Sum(values)
		out = append(out, &remapped)
	}
	return out
}
