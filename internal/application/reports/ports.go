package reports

import (
	"context"
	"time"

	"github.com/davortega/bodega-equipos/internal/domain/entity"
)

// MovementReportRow una fila del reporte: el movimiento más el equipo al que pertenece.
type MovementReportRow struct {
	Movement  *entity.Movement
	Equipment *entity.Equipment
}

// Period rango de fechas del reporte (cualquiera de los dos puede ser nil).
type Period struct {
	From *time.Time
	To   *time.Time
}

// MovementReportGenerator puerto de render del reporte de movimientos (PDF).
type MovementReportGenerator interface {
	GenerateMovementReport(ctx context.Context, branch *entity.Branch, rows []MovementReportRow, period Period) ([]byte, error)
}
