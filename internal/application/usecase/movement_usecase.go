package usecase

import (
	"time"

	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el historial de
// movimientos. El historial no expone escrituras fuera del ledger.
type MovementQueryUseCase struct {
	repo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(repo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{repo: repo}
}

// List lista movimientos filtrando por equipo, sucursal y rango de fechas.
func (uc *MovementQueryUseCase) List(equipmentID, branchID string, from, to *time.Time, limit, offset int) ([]*entity.Movement, error) {
	filter := repository.MovementFilter{
		EquipmentID: equipmentID,
		BranchID:    branchID,
		From:        from,
		To:          to,
	}
	return uc.repo.List(filter, limit, offset)
}
