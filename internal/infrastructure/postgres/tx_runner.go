package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davortega/bodega-equipos/internal/application/ledger"
	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner.
var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Los
// conflictos de escritura (serialization failure, deadlock) se mapean a
// domain.ErrTxAborted para que el caller decida reintentar o reportar.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El error de fn se devuelve sin cambios salvo conflicto
// de transacción.
func (r *TxRunner) Run(ctx context.Context, fn func(
	equipmentRepo repository.EquipmentRepository,
	loanRepo repository.LoanRecordRepository,
	movementRepo repository.MovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	equipmentRepo := NewEquipmentRepository(tx)
	loanRepo := NewLoanRecordRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(equipmentRepo, loanRepo, movementRepo); err != nil {
		if isTxConflict(err) {
			return fmt.Errorf("%v: %w", err, domain.ErrTxAborted)
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		if isTxConflict(err) {
			return fmt.Errorf("commit transaction: %v: %w", err, domain.ErrTxAborted)
		}
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
