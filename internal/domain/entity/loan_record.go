package entity

import "time"

// Estados de un préstamo. La transición prestado -> devuelto ocurre exactamente
// una vez; no existe ninguna otra transición.
const (
	LoanStatusPrestado = "prestado"
	LoanStatusDevuelto = "devuelto"
)

// LoanRecord registra material prestado fuera de bodega. Es un registro
// histórico: nunca se elimina, y después de la devolución solo queda inmutable.
type LoanRecord struct {
	ID            string
	TransactionID string // correlaciona el préstamo con el Movement creado en la misma operación
	EquipmentID   string
	Cantidad      int // siempre > 0

	ResponsibleName           string // persona externa que recibe el material
	ResponsibleIdentification string // cédula (opcional)
	ResponsibleArea           string // área o unidad (opcional)

	CustodianID   string // custodio que autoriza el egreso
	PerformedByID string // usuario que registra la operación
	BranchID      string

	LoanDate    time.Time
	ReturnDate  *time.Time // nil mientras el préstamo siga abierto
	Status      string     // prestado | devuelto
	Observacion string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open indica si el préstamo sigue abierto (material fuera de bodega).
func (l *LoanRecord) Open() bool {
	return l.Status == LoanStatusPrestado
}
