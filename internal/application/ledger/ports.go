package ledger

import (
	"context"

	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Si fn retorna error, todas las escrituras hechas
// a través de esos repositorios se descartan y el error se devuelve sin cambios;
// si fn termina sin error, las escrituras se vuelven durables y visibles juntas.
// Ninguna escritura de una llamada es observable por otra llamada concurrente
// antes del commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		equipmentRepo repository.EquipmentRepository,
		loanRepo repository.LoanRecordRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
