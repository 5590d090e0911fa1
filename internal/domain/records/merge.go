// Package records contiene la lógica pura del agregado diario: coerción de
// valores por outlet, fusión con preferencia por el valor entrante y recálculo
// del total (servicios de dominio, sin I/O).
package records

import "github.com/shopspring/decimal"

// CoerceValue convierte un valor JSON arbitrario a un monto no negativo.
// Entradas inválidas o negativas degradan a 0; nunca se rechaza el request
// completo por un valor sucio.
func CoerceValue(v interface{}) decimal.Decimal {
	var d decimal.Decimal
	switch n := v.(type) {
	case float64:
		d = decimal.NewFromFloat(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case string:
		parsed, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	case decimal.Decimal:
		d = n
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CoerceValues aplica CoerceValue a cada entrada del payload crudo.
func CoerceValues(raw map[string]interface{}) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(raw))
	for name, v := range raw {
		out[name] = CoerceValue(v)
	}
	return out
}

// Merge devuelve la unión de claves con preferencia por el valor entrante:
// los outlets mencionados en incoming sobreescriben su valor previo, los no
// mencionados conservan el suyo. No muta los argumentos.
func Merge(existing, incoming map[string]decimal.Decimal) map[string]decimal.Decimal {
	merged := make(map[string]decimal.Decimal, len(existing)+len(incoming))
	for name, v := range existing {
		merged[name] = v
	}
	for name, v := range incoming {
		merged[name] = v
	}
	return merged
}

// Sum recalcula el total de un mapa de valores por outlet.
func Sum(values map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}
