// Package zone normaliza identificadores de zona geográfica.
//
// Los zoneId llegan en formatos mixtos según el cliente: "2", "Zone 2",
// " zone2 ". Toda comparación de zonas en el sistema debe pasar por
// Normalize/Match; comparar strings crudos falla en silencio.
package zone

import "strings"

// Default zona asignada a la captura de datos de un Admin sin zona propia.
const Default = "Zone 1"

// Normalize reduce un zoneId a su forma canónica: minúsculas, sin el literal
// "zone" y sin espacios. Devuelve "" para un valor vacío o irreconocible.
func Normalize(z string) string {
	s := strings.ToLower(strings.TrimSpace(z))
	s = strings.ReplaceAll(s, "zone", "")
	return strings.TrimSpace(s)
}

// Match compara dos zoneId en forma normalizada. Dos valores vacíos o
// malformados degradan a "no coincide", nunca a error.
func Match(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	return na == nb
}
