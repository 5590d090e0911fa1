package zone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eggbucket/eggbucket-api/pkg/zone"
)

func TestNormalize_FormatosMixtos(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Zone 2", "2"},
		{"zone2", "2"},
		{" ZONE 2 ", "2"},
		{"2", "2"},
		{"Zone 10", "10"},
		{"", ""},
		{"   ", ""},
		{"zone", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, zone.Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestMatch_EquivalenciaLaxa(t *testing.T) {
	assert.True(t, zone.Match("Zone 2", "zone2"))
	assert.True(t, zone.Match("2", " ZONE 2 "))
	assert.False(t, zone.Match("Zone 1", "Zone 2"))
}

// Valores vacíos o irreconocibles nunca coinciden, ni siquiera entre sí:
// "sin zona" no es una zona.
func TestMatch_VaciosNoCoinciden(t *testing.T) {
	assert.False(t, zone.Match("", ""))
	assert.False(t, zone.Match("", "Zone 1"))
	assert.False(t, zone.Match("zone", "zone"))
}
