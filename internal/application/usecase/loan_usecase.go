package usecase

import (
	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// LoanQueryUseCase consultas de solo lectura sobre préstamos. Las escrituras
// pasan siempre por el ledger (egreso abre, devolución cierra).
type LoanQueryUseCase struct {
	repo repository.LoanRecordRepository
}

// NewLoanQueryUseCase construye el caso de uso.
func NewLoanQueryUseCase(repo repository.LoanRecordRepository) *LoanQueryUseCase {
	return &LoanQueryUseCase{repo: repo}
}

// GetByID obtiene un préstamo por ID.
func (uc *LoanQueryUseCase) GetByID(id string) (*entity.LoanRecord, error) {
	loan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, domain.ErrNotFound
	}
	return loan, nil
}

// List lista préstamos filtrando por equipo, sucursal y estado.
func (uc *LoanQueryUseCase) List(equipmentID, branchID, status string, limit, offset int) ([]*entity.LoanRecord, error) {
	if status != "" && status != entity.LoanStatusPrestado && status != entity.LoanStatusDevuelto {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.LoanRecordFilter{
		EquipmentID: equipmentID,
		BranchID:    branchID,
		Status:      status,
	}
	return uc.repo.List(filter, limit, offset)
}
