package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// StockLedgerUseCase es el único mutador de los contadores de Equipment.
// Cada operación (ingreso, egreso, devolución) corre completa dentro de una
// transacción del TxRunner: contadores + préstamo + movimiento se confirman
// juntos o se descartan juntos.
type StockLedgerUseCase struct {
	txRunner TxRunner
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner) *StockLedgerUseCase {
	return &StockLedgerUseCase{txRunner: txRunner}
}

// IncomeInput entrada para registrar un ingreso de material.
type IncomeInput struct {
	EquipmentID   string
	Cantidad      int
	Tipo          string // servible | caducado
	Observacion   string
	PerformedByID string
	BranchID      string
}

// OutcomeInput entrada para registrar un egreso (préstamo/dotación).
type OutcomeInput struct {
	EquipmentID               string
	Cantidad                  int
	ResponsibleName           string
	ResponsibleIdentification string
	ResponsibleArea           string
	CustodianID               string
	Observacion               string
	PerformedByID             string
	BranchID                  string
}

// ReturnInput entrada para registrar la devolución de un préstamo.
type ReturnInput struct {
	LoanRecordID  string
	Observacion   string
	PerformedByID string
	BranchID      string
}

// RegisterIncome incrementa el contador servible o caducado del equipo y deja un
// movimiento de Ingreso, todo dentro de una transacción. Devuelve el snapshot
// actualizado del equipo.
func (uc *StockLedgerUseCase) RegisterIncome(ctx context.Context, in IncomeInput) (*entity.Equipment, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.IncomeKindServible && in.Tipo != entity.IncomeKindCaducado {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()

	var snapshot *entity.Equipment
	err := uc.txRunner.Run(ctx, func(
		equipmentRepo repository.EquipmentRepository,
		_ repository.LoanRecordRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del equipo (SELECT FOR UPDATE)
		equipment, err := equipmentRepo.GetForUpdate(in.EquipmentID)
		if err != nil {
			return err
		}
		if equipment == nil {
			return domain.ErrNotFound
		}

		if in.Tipo == entity.IncomeKindCaducado {
			equipment.MaterialCaducado += in.Cantidad
		} else {
			equipment.MaterialServible += in.Cantidad
		}
		if in.Observacion != "" {
			equipment.Observacion = in.Observacion
		}
		equipment.UpdatedAt = now
		if err := equipmentRepo.UpdateQuantities(equipment); err != nil {
			return err
		}

		mov := &entity.Movement{
			TransactionID: txID,
			EquipmentID:   equipment.ID,
			Type:          entity.MovementTypeIngreso,
			Quantity:      in.Cantidad,
			ResponsibleID: in.PerformedByID,
			PerformedByID: in.PerformedByID,
			BranchID:      in.BranchID,
			Timestamp:     now,
			Reason:        fmt.Sprintf("Ingreso de material %s", in.Tipo),
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}

		snapshot = equipment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// RegisterOutcome registra un egreso: resta material servible, suma prestado,
// abre un LoanRecord y deja un movimiento de Egreso. Las tres escrituras
// comparten TransactionID y se confirman en una sola transacción.
func (uc *StockLedgerUseCase) RegisterOutcome(ctx context.Context, in OutcomeInput) (*entity.Equipment, *entity.LoanRecord, error) {
	if in.Cantidad <= 0 || in.ResponsibleName == "" || in.CustodianID == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txID := uuid.New().String()

	var (
		snapshot *entity.Equipment
		loan     *entity.LoanRecord
	)
	err := uc.txRunner.Run(ctx, func(
		equipmentRepo repository.EquipmentRepository,
		loanRepo repository.LoanRecordRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea la fila del equipo (SELECT FOR UPDATE)
		equipment, err := equipmentRepo.GetForUpdate(in.EquipmentID)
		if err != nil {
			return err
		}
		if equipment == nil {
			return domain.ErrNotFound
		}
		if equipment.MaterialServible < in.Cantidad {
			return domain.ErrInsufficientStock
		}

		// El egreso solo mueve cantidad entre contadores; el total no cambia
		equipment.MaterialServible -= in.Cantidad
		equipment.MaterialPrestado += in.Cantidad
		equipment.UpdatedAt = now
		if err := equipmentRepo.UpdateQuantities(equipment); err != nil {
			return err
		}

		loan = &entity.LoanRecord{
			ID:                        uuid.New().String(),
			TransactionID:             txID,
			EquipmentID:               equipment.ID,
			Cantidad:                  in.Cantidad,
			ResponsibleName:           in.ResponsibleName,
			ResponsibleIdentification: in.ResponsibleIdentification,
			ResponsibleArea:           in.ResponsibleArea,
			CustodianID:               in.CustodianID,
			PerformedByID:             in.PerformedByID,
			BranchID:                  in.BranchID,
			LoanDate:                  now,
			Status:                    entity.LoanStatusPrestado,
			Observacion:               in.Observacion,
			CreatedAt:                 now,
			UpdatedAt:                 now,
		}
		if err := loanRepo.Create(loan); err != nil {
			return err
		}

		mov := &entity.Movement{
			TransactionID: txID,
			EquipmentID:   equipment.ID,
			Type:          entity.MovementTypeEgreso,
			Quantity:      in.Cantidad,
			ResponsibleID: in.PerformedByID,
			PerformedByID: in.PerformedByID,
			BranchID:      in.BranchID,
			Timestamp:     now,
			Reason:        fmt.Sprintf("Egreso a: %s", in.ResponsibleName),
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}

		snapshot = equipment
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return snapshot, loan, nil
}

// RegisterReturn cierra un préstamo: devuelve la cantidad a material servible,
// resta prestado, marca el préstamo como devuelto y deja un movimiento de
// Ingreso atribuido al custodio que autorizó el préstamo (el usuario que
// registra queda en PerformedByID).
func (uc *StockLedgerUseCase) RegisterReturn(ctx context.Context, in ReturnInput) (*entity.Equipment, *entity.LoanRecord, error) {
	now := time.Now()
	txID := uuid.New().String()

	var (
		snapshot *entity.Equipment
		closed   *entity.LoanRecord
	)
	err := uc.txRunner.Run(ctx, func(
		equipmentRepo repository.EquipmentRepository,
		loanRepo repository.LoanRecordRepository,
		movementRepo repository.MovementRepository,
	) error {
		// Bloquea primero el préstamo: dos devoluciones concurrentes del mismo
		// préstamo se serializan y la segunda ve status=devuelto.
		loan, err := loanRepo.GetForUpdate(in.LoanRecordID)
		if err != nil {
			return err
		}
		if loan == nil {
			return domain.ErrNotFound
		}
		if !loan.Open() {
			return domain.ErrLoanAlreadyReturned
		}

		equipment, err := equipmentRepo.GetForUpdate(loan.EquipmentID)
		if err != nil {
			return err
		}
		if equipment == nil {
			return domain.ErrNotFound
		}

		equipment.MaterialServible += loan.Cantidad
		equipment.MaterialPrestado -= loan.Cantidad
		if equipment.MaterialPrestado < 0 {
			// Inalcanzable con contabilidad correcta; se aborta todo en vez de
			// persistir un contador negativo.
			return fmt.Errorf("material prestado quedaría negativo (equipo %s): %w",
				equipment.ID, domain.ErrTxAborted)
		}
		equipment.UpdatedAt = now
		if err := equipmentRepo.UpdateQuantities(equipment); err != nil {
			return err
		}

		returnDate := now
		loan.Status = entity.LoanStatusDevuelto
		loan.ReturnDate = &returnDate
		if in.Observacion != "" {
			loan.Observacion = in.Observacion
		}
		loan.UpdatedAt = now
		if err := loanRepo.Update(loan); err != nil {
			return err
		}

		area := loan.ResponsibleArea
		if area == "" {
			area = "Sin área especificada"
		}
		mov := &entity.Movement{
			TransactionID: txID,
			EquipmentID:   equipment.ID,
			Type:          entity.MovementTypeIngreso,
			Quantity:      loan.Cantidad,
			ResponsibleID: loan.CustodianID,
			PerformedByID: in.PerformedByID,
			BranchID:      in.BranchID,
			Timestamp:     now,
			Reason:        fmt.Sprintf("Devolución de %s - %s", loan.ResponsibleName, area),
			CreatedAt:     now,
		}
		if err := movementRepo.Create(mov); err != nil {
			return err
		}

		snapshot = equipment
		closed = loan
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return snapshot, closed, nil
}
