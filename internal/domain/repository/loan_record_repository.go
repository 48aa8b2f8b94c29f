package repository

import "github.com/davortega/bodega-equipos/internal/domain/entity"

// LoanRecordFilter filtros para listar préstamos.
type LoanRecordFilter struct {
	EquipmentID string
	BranchID    string
	Status      string // prestado | devuelto | vacío = todos
}

// LoanRecordRepository define el puerto de persistencia para préstamos.
// No existe Delete: los préstamos son registro histórico.
type LoanRecordRepository interface {
	Create(loan *entity.LoanRecord) error
	GetByID(id string) (*entity.LoanRecord, error)
	// GetForUpdate bloquea la fila del préstamo; evita dos devoluciones concurrentes.
	GetForUpdate(id string) (*entity.LoanRecord, error)
	// Update persiste el cierre del préstamo (status, returnDate, observación).
	Update(loan *entity.LoanRecord) error
	List(filter LoanRecordFilter, limit, offset int) ([]*entity.LoanRecord, error)
	CountOpenByEquipment(equipmentID string) (int, error)
}
