package repository

import (
	"time"

	"github.com/davortega/bodega-equipos/internal/domain/entity"
)

// MovementFilter filtros para listar movimientos.
type MovementFilter struct {
	EquipmentID string
	BranchID    string
	From        *time.Time
	To          *time.Time
}

// MovementRepository define el puerto de persistencia del historial de movimientos.
// Create es la única escritura: el historial es append-only, sin update ni delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	List(filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
}
