package reports

import (
	"context"
	"time"

	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// maxReportRows tope de filas por reporte; por encima se debe acotar el rango de fechas.
const maxReportRows = 500

// MovementReportUseCase arma el reporte de historial de movimientos de una
// sucursal y lo renderiza con el generador inyectado.
type MovementReportUseCase struct {
	movementRepo  repository.MovementRepository
	equipmentRepo repository.EquipmentRepository
	branchRepo    repository.BranchRepository
	generator     MovementReportGenerator
}

// NewMovementReportUseCase construye el caso de uso.
func NewMovementReportUseCase(
	movementRepo repository.MovementRepository,
	equipmentRepo repository.EquipmentRepository,
	branchRepo repository.BranchRepository,
	generator MovementReportGenerator,
) *MovementReportUseCase {
	return &MovementReportUseCase{
		movementRepo:  movementRepo,
		equipmentRepo: equipmentRepo,
		branchRepo:    branchRepo,
		generator:     generator,
	}
}

// Generate produce el PDF del historial de movimientos de la sucursal en el
// rango [from, to].
func (uc *MovementReportUseCase) Generate(ctx context.Context, branchID string, from, to *time.Time) ([]byte, error) {
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}

	movements, err := uc.movementRepo.List(repository.MovementFilter{
		BranchID: branchID,
		From:     from,
		To:       to,
	}, maxReportRows, 0)
	if err != nil {
		return nil, err
	}

	// Los movimientos de un mismo equipo comparten la fila de catálogo
	equipmentByID := make(map[string]*entity.Equipment)
	rows := make([]MovementReportRow, 0, len(movements))
	for _, mov := range movements {
		equipment, ok := equipmentByID[mov.EquipmentID]
		if !ok {
			equipment, err = uc.equipmentRepo.GetByID(mov.EquipmentID)
			if err != nil {
				return nil, err
			}
			equipmentByID[mov.EquipmentID] = equipment
		}
		rows = append(rows, MovementReportRow{Movement: mov, Equipment: equipment})
	}

	return uc.generator.GenerateMovementReport(ctx, branch, rows, Period{From: from, To: to})
}
