package entity

import "time"

// Unidades de medida válidas (alineadas con el inventario de bodega en Excel).
const (
	UnitEA = "EA" // Each (Unidad)
	UnitUN = "UN" // Unidad
	UnitQT = "QT" // Cuarto
	UnitRL = "RL" // Rollo
	UnitPR = "PR" // Par
	UnitGL = "GL" // Galón
)

// Tipos de ingreso de material.
const (
	IncomeKindServible = "servible"
	IncomeKindCaducado = "caducado"
)

// Equipment representa un ítem del inventario de bodega de equipo y vestuario.
// Los tres contadores son siempre >= 0 y solo los muta el motor de ledger
// (ingreso/egreso/devolución) dentro de una transacción.
type Equipment struct {
	ID          string
	Esigeft     bool   // registrado en sistema ESIGEF
	Esbye       bool   // registrado en sistema ESBYE
	Tipo        string // ej: "Equipo de Protección Balístico"
	Description string
	Unit        string // EA, UN, QT, RL, PR, GL

	MaterialServible int // material en buen estado dentro de bodega
	MaterialCaducado int // material caducado o en mal estado dentro de bodega
	MaterialPrestado int // material fuera de bodega (préstamo/dotación)

	Observacion string
	CustodianID string
	BranchID    string
	EntryDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalEnBodega devuelve servible + caducado. Campo derivado, nunca se persiste.
func (e *Equipment) TotalEnBodega() int {
	return e.MaterialServible + e.MaterialCaducado
}

// Total devuelve el total general: totalEnBodega + prestado. Derivado, nunca se persiste.
func (e *Equipment) Total() int {
	return e.TotalEnBodega() + e.MaterialPrestado
}

// ValidUnit indica si u es una unidad de medida reconocida.
func ValidUnit(u string) bool {
	switch u {
	case UnitEA, UnitUN, UnitQT, UnitRL, UnitPR, UnitGL:
		return true
	}
	return false
}
