package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConflictPolicy define qué hace el upsert cuando ya existe un registro para la
// misma fecha. Es configuración por tipo de entidad, no una variante del algoritmo.
type ConflictPolicy int

const (
	// MergeOnConflict fusiona los valores entrantes con el registro existente
	// (unión de claves con preferencia por el valor entrante) y recalcula el total.
	MergeOnConflict ConflictPolicy = iota
	// RejectOnConflict rechaza la escritura completa: el registro de esa fecha
	// queda bloqueado tras su primera captura.
	RejectOnConflict
)

// RecordKind identifica una colección de registros diarios.
type RecordKind string

const (
	KindDailySales      RecordKind = "dailysales"
	KindCashPayments    RecordKind = "cashpayments"
	KindDigitalPayments RecordKind = "digitalpayments"
	KindDailyDamages    RecordKind = "dailydamages"
)

// KindDescriptor describe el comportamiento de un tipo de entidad: la clave del
// payload JSON ("outlets", damages usa "damages") y su política de conflicto.
type KindDescriptor struct {
	Kind       RecordKind
	PayloadKey string
	Policy     ConflictPolicy
}

// Kinds es el catálogo de tipos de entidad. Ventas y pagos fusionan; los daños
// quedan bloqueados tras la primera captura del día.
var Kinds = map[RecordKind]KindDescriptor{
	KindDailySales:      {Kind: KindDailySales, PayloadKey: "outlets", Policy: MergeOnConflict},
	KindCashPayments:    {Kind: KindCashPayments, PayloadKey: "outlets", Policy: MergeOnConflict},
	KindDigitalPayments: {Kind: KindDigitalPayments, PayloadKey: "outlets", Policy: MergeOnConflict},
	KindDailyDamages:    {Kind: KindDailyDamages, PayloadKey: "damages", Policy: RejectOnConflict},
}

// DailyRecord representa el agregado diario de un tipo de entidad: a lo sumo un
// registro por (kind, fecha). Total debe ser siempre la suma de OutletValues;
// cualquier otra cosa es un bug de datos, no un estado soportado.
type DailyRecord struct {
	ID           string
	Kind         RecordKind
	Date         string // "YYYY-MM-DD", clave natural dentro del kind
	OutletValues map[string]decimal.Decimal
	Total        decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
