package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/davortega/bodega-equipos/internal/application/dto"
	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

// CustodianUseCase casos de uso CRUD para custodios.
type CustodianUseCase struct {
	repo repository.CustodianRepository
}

// NewCustodianUseCase construye el caso de uso.
func NewCustodianUseCase(repo repository.CustodianRepository) *CustodianUseCase {
	return &CustodianUseCase{repo: repo}
}

// Create registra un custodio. La identificación es única.
func (uc *CustodianUseCase) Create(in dto.CreateCustodianRequest) (*entity.Custodian, error) {
	if in.Name == "" || in.Identification == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	custodian := &entity.Custodian{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Rank:           in.Rank,
		Identification: in.Identification,
		Area:           in.Area,
		IsActive:       true,
		IsDefault:      in.IsDefault,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(custodian); err != nil {
		return nil, err
	}
	return custodian, nil
}

// GetByID obtiene un custodio por ID.
func (uc *CustodianUseCase) GetByID(id string) (*entity.Custodian, error) {
	custodian, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if custodian == nil {
		return nil, domain.ErrNotFound
	}
	return custodian, nil
}

// Update actualiza un custodio.
func (uc *CustodianUseCase) Update(id string, in dto.UpdateCustodianRequest) (*entity.Custodian, error) {
	custodian, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if custodian == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		custodian.Name = *in.Name
	}
	if in.Rank != nil {
		custodian.Rank = *in.Rank
	}
	if in.Area != nil {
		custodian.Area = *in.Area
	}
	if in.IsActive != nil {
		custodian.IsActive = *in.IsActive
	}
	if in.IsDefault != nil {
		custodian.IsDefault = *in.IsDefault
	}
	custodian.UpdatedAt = time.Now()
	if err := uc.repo.Update(custodian); err != nil {
		return nil, err
	}
	return custodian, nil
}

// List lista custodios (opcionalmente solo activos) con paginación.
func (uc *CustodianUseCase) List(onlyActive bool, limit, offset int) ([]*entity.Custodian, error) {
	return uc.repo.List(onlyActive, limit, offset)
}

// Delete elimina un custodio por ID.
func (uc *CustodianUseCase) Delete(id string) error {
	custodian, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if custodian == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
