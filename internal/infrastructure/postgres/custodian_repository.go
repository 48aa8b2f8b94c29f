package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/davortega/bodega-equipos/internal/domain"
	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

var _ repository.CustodianRepository = (*CustodianRepo)(nil)

const custodianColumns = `id, name, rank, identification, area, is_active, is_default, created_at, updated_at`

// CustodianRepo implementación de CustodianRepository sobre PostgreSQL.
type CustodianRepo struct {
	q Querier
}

func NewCustodianRepository(q Querier) *CustodianRepo {
	return &CustodianRepo{q: q}
}

// Create persiste un custodio nuevo. Identificación duplicada -> ErrDuplicate.
func (r *CustodianRepo) Create(custodian *entity.Custodian) error {
	if custodian.ID == "" {
		custodian.ID = uuid.New().String()
	}
	query := `
		INSERT INTO custodians (id, name, rank, identification, area, is_active, is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		custodian.ID, custodian.Name, custodian.Rank, custodian.Identification,
		custodian.Area, custodian.IsActive, custodian.IsDefault,
		custodian.CreatedAt, custodian.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("identification %s: %w", custodian.Identification, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert custodian: %w", err)
	}
	return nil
}

// GetByID obtiene un custodio por ID. Devuelve nil, nil si no existe.
func (r *CustodianRepo) GetByID(id string) (*entity.Custodian, error) {
	query := `SELECT ` + custodianColumns + ` FROM custodians WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get custodian")
}

// GetDefault obtiene el custodio marcado por defecto, si existe.
func (r *CustodianRepo) GetDefault() (*entity.Custodian, error) {
	query := `SELECT ` + custodianColumns + ` FROM custodians WHERE is_default = TRUE AND is_active = TRUE LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query), "get default custodian")
}

// Update persiste cambios en un custodio.
func (r *CustodianRepo) Update(custodian *entity.Custodian) error {
	query := `
		UPDATE custodians SET name = $2, rank = $3, identification = $4, area = $5,
			is_active = $6, is_default = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		custodian.ID, custodian.Name, custodian.Rank, custodian.Identification,
		custodian.Area, custodian.IsActive, custodian.IsDefault, custodian.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("identification %s: %w", custodian.Identification, domain.ErrDuplicate)
		}
		return fmt.Errorf("update custodian: %w", err)
	}
	return nil
}

// List lista custodios, opcionalmente solo los activos.
func (r *CustodianRepo) List(onlyActive bool, limit, offset int) ([]*entity.Custodian, error) {
	query := `SELECT ` + custodianColumns + ` FROM custodians`
	if onlyActive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list custodians: %w", err)
	}
	defer rows.Close()
	var list []*entity.Custodian
	for rows.Next() {
		c, err := scanCustodianRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan custodian: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Delete elimina un custodio por ID.
func (r *CustodianRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM custodians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete custodian: %w", err)
	}
	return nil
}

func (r *CustodianRepo) scanOne(row pgx.Row, op string) (*entity.Custodian, error) {
	c, err := scanCustodianRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func scanCustodianRow(row pgx.Row) (*entity.Custodian, error) {
	var c entity.Custodian
	err := row.Scan(
		&c.ID, &c.Name, &c.Rank, &c.Identification, &c.Area,
		&c.IsActive, &c.IsDefault, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
