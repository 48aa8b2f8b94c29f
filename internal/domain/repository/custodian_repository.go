package repository

import "github.com/davortega/bodega-equipos/internal/domain/entity"

// CustodianRepository define el puerto de persistencia para custodios.
type CustodianRepository interface {
	Create(custodian *entity.Custodian) error
	GetByID(id string) (*entity.Custodian, error)
	GetDefault() (*entity.Custodian, error)
	Update(custodian *entity.Custodian) error
	List(onlyActive bool, limit, offset int) ([]*entity.Custodian, error)
	Delete(id string) error
}
