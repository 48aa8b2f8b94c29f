package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/davortega/bodega-equipos/internal/application/dto"
	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
	"github.com/davortega/bodega-equipos/pkg/normalize"
)

// EquipmentUseCase casos de uso CRUD para equipos. Los contadores solo se fijan
// en la creación (intake); después únicamente los muta el ledger.
type EquipmentUseCase struct {
	repo          repository.EquipmentRepository
	loanRepo      repository.LoanRecordRepository
	custodianRepo repository.CustodianRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(
	repo repository.EquipmentRepository,
	loanRepo repository.LoanRecordRepository,
	custodianRepo repository.CustodianRepository,
) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, loanRepo: loanRepo, custodianRepo: custodianRepo}
}

// Create registra un equipo nuevo con sus contadores iniciales (prestado siempre 0).
// Si no se indica custodio se usa el custodio por defecto.
func (uc *EquipmentUseCase) Create(in dto.CreateEquipmentRequest, branchID string) (*entity.Equipment, error) {
	if in.Tipo == "" || in.Description == "" || !entity.ValidUnit(in.Unit) {
		return nil, domain.ErrInvalidInput
	}
	if in.MaterialServible < 0 || in.MaterialCaducado < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.BranchID != "" {
		branchID = in.BranchID
	}
	if branchID == "" {
		return nil, domain.ErrInvalidInput
	}

	custodianID := in.CustodianID
	if custodianID == "" {
		def, err := uc.custodianRepo.GetDefault()
		if err != nil {
			return nil, err
		}
		if def == nil {
			return nil, domain.ErrInvalidInput
		}
		custodianID = def.ID
	} else {
		custodian, err := uc.custodianRepo.GetByID(custodianID)
		if err != nil {
			return nil, err
		}
		if custodian == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	equipment := &entity.Equipment{
		ID:               uuid.New().String(),
		Esigeft:          in.Esigeft,
		Esbye:            in.Esbye,
		Tipo:             in.Tipo,
		Description:      in.Description,
		Unit:             in.Unit,
		MaterialServible: in.MaterialServible,
		MaterialCaducado: in.MaterialCaducado,
		MaterialPrestado: 0,
		Observacion:      in.Observacion,
		CustodianID:      custodianID,
		BranchID:         branchID,
		EntryDate:        now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipmentUseCase) GetByID(id string) (*entity.Equipment, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	return equipment, nil
}

// Update actualiza la metadata de un equipo. Los contadores no se tocan aquí.
func (uc *EquipmentUseCase) Update(id string, in dto.UpdateEquipmentRequest) (*entity.Equipment, error) {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	if in.Esigeft != nil {
		equipment.Esigeft = *in.Esigeft
	}
	if in.Esbye != nil {
		equipment.Esbye = *in.Esbye
	}
	if in.Tipo != nil {
		equipment.Tipo = *in.Tipo
	}
	if in.Description != nil {
		equipment.Description = *in.Description
	}
	if in.Unit != nil {
		if !entity.ValidUnit(*in.Unit) {
			return nil, domain.ErrInvalidInput
		}
		equipment.Unit = *in.Unit
	}
	if in.Observacion != nil {
		equipment.Observacion = *in.Observacion
	}
	if in.CustodianID != nil {
		custodian, err := uc.custodianRepo.GetByID(*in.CustodianID)
		if err != nil {
			return nil, err
		}
		if custodian == nil {
			return nil, domain.ErrNotFound
		}
		equipment.CustodianID = *in.CustodianID
	}
	equipment.UpdatedAt = time.Now()
	if err := uc.repo.Update(equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// List lista equipos filtrando por sucursal, tipo y término de búsqueda.
// El término se normaliza (minúsculas, sin tildes) para buscar sobre description_norm.
func (uc *EquipmentUseCase) List(branchID, tipo, search string, limit, offset int) ([]*entity.Equipment, error) {
	filter := repository.EquipmentFilter{
		BranchID: branchID,
		Tipo:     tipo,
		Search:   normalize.Fold(search),
	}
	return uc.repo.List(filter, limit, offset)
}

// Delete elimina un equipo. Rechaza la eliminación mientras existan préstamos
// abiertos que lo referencien.
func (uc *EquipmentUseCase) Delete(id string) error {
	equipment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if equipment == nil {
		return domain.ErrNotFound
	}
	open, err := uc.loanRepo.CountOpenByEquipment(id)
	if err != nil {
		return err
	}
	if open > 0 {
		return domain.ErrEquipmentHasOpenLoans
	}
	return uc.repo.Delete(id)
}
