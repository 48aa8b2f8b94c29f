package repository

import "github.com/davortega/bodega-equipos/internal/domain/entity"

// EquipmentFilter filtros para listar equipos.
type EquipmentFilter struct {
	BranchID string
	Tipo     string
	Search   string // término ya normalizado (ver pkg/normalize)
}

// EquipmentRepository define el puerto de persistencia para Equipment (DIP).
// GetForUpdate solo tiene sentido dentro de una transacción; bloquea la fila del
// equipo para que dos operaciones del ledger no actúen sobre contadores viejos.
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	GetForUpdate(id string) (*entity.Equipment, error)
	Update(equipment *entity.Equipment) error
	// UpdateQuantities persiste únicamente los tres contadores y la observación.
	UpdateQuantities(equipment *entity.Equipment) error
	List(filter EquipmentFilter, limit, offset int) ([]*entity.Equipment, error)
	Delete(id string) error
}
