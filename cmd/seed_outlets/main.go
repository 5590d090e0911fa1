// seed_outlets genera un script SQL para poblar la tabla de outlets a partir
// de un CSV exportado del padrón (típicamente guardado por Excel en Windows-1252).
//
// Uso: go run ./cmd/seed_outlets [ruta/outlets.csv]
// Por defecto busca outlets.csv en el directorio actual.
// Columnas esperadas (con cabecera): name, area, zone, contact, phone
// Escribe: internal/infrastructure/postgres/migrations/002_seed_outlets.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

func main() {
	csvPath := "outlets.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, charmap.Windows1252.NewDecoder()))
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) < 2 {
		fmt.Fprintln(os.Stderr, "CSV vacío o sin filas de datos")
		os.Exit(1)
	}

	// Mapear cabecera -> índice de columna (tolerante a mayúsculas y orden)
	col := make(map[string]int)
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "zone"} {
		if _, ok := col[required]; !ok {
			fmt.Fprintf(os.Stderr, "Falta la columna %q en la cabecera\n", required)
			os.Exit(1)
		}
	}

	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_outlets.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Padrón inicial de outlets\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")

	count := 0
	for _, row := range rows[1:] {
		name := get(row, "name")
		zoneID := get(row, "zone")
		if name == "" || zoneID == "" {
			continue
		}
		fmt.Fprintf(out, "INSERT INTO outlets (id, name, area, zone_id, zone_norm, status, contact, phone)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s', 'Active', '%s', '%s')\n",
			uuid.NewString(), escapeSQL(name), escapeSQL(get(row, "area")),
			escapeSQL(zoneID), escapeSQL(zone.Normalize(zoneID)),
			escapeSQL(get(row, "contact")), escapeSQL(get(row, "phone")))
		out.WriteString("ON CONFLICT (id) DO NOTHING;\n")
		count++
	}

	fmt.Printf("Generado %s: %d outlets\n", outPath, count)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
