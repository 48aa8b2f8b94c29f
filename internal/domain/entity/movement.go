package entity

import "time"

// Tipos de movimiento del historial de auditoría.
const (
	MovementTypeIngreso = "Ingreso"
	MovementTypeEgreso  = "Egreso"
	MovementTypeAjuste  = "Ajuste"
)

// Movement es una entrada inmutable del historial de movimientos: se crea una
// vez por operación exitosa del ledger y nunca se actualiza ni se elimina.
type Movement struct {
	ID            string
	TransactionID string // misma operación del ledger que lo produjo
	EquipmentID   string
	Type          string // Ingreso | Egreso | Ajuste
	Quantity      int    // siempre > 0; el signo lo da Type
	ResponsibleID string // a quién se atribuye el movimiento
	PerformedByID string // usuario que ejecutó la operación
	BranchID      string
	Timestamp     time.Time
	Reason        string
	CreatedAt     time.Time
}

// ValidMovementType indica si t es un tipo de movimiento reconocido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIngreso, MovementTypeEgreso, MovementTypeAjuste:
		return true
	}
	return false
}
