package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
	"github.com/davortega/bodega-equipos/pkg/normalize"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

const equipmentColumns = `id, esigeft, esbye, tipo, description, unit,
	material_servible, material_caducado, material_prestado,
	observacion, custodian_id, branch_id, entry_date, created_at, updated_at`

// EquipmentRepo implementación de EquipmentRepository sobre PostgreSQL
// (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un equipo nuevo. description_norm se deriva aquí para que la
// búsqueda insensible a tildes no dependa de extensiones de la BD.
func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	if equipment.ID == "" {
		equipment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO equipment (id, esigeft, esbye, tipo, description, description_norm, unit,
			material_servible, material_caducado, material_prestado,
			observacion, custodian_id, branch_id, entry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.Esigeft, equipment.Esbye, equipment.Tipo,
		equipment.Description, normalize.Fold(equipment.Description), equipment.Unit,
		equipment.MaterialServible, equipment.MaterialCaducado, equipment.MaterialPrestado,
		equipment.Observacion, equipment.CustodianID, equipment.BranchID,
		equipment.EntryDate, equipment.CreatedAt, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID. Devuelve nil, nil si no existe.
func (r *EquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get equipment")
}

// GetForUpdate obtiene el equipo y bloquea la fila (SELECT FOR UPDATE) para que
// dos operaciones del ledger sobre el mismo equipo no actúen sobre contadores viejos.
func (r *EquipmentRepo) GetForUpdate(id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get equipment for update")
}

// Update persiste la metadata de un equipo (no los contadores).
func (r *EquipmentRepo) Update(equipment *entity.Equipment) error {
	query := `
		UPDATE equipment SET esigeft = $2, esbye = $3, tipo = $4, description = $5,
			description_norm = $6, unit = $7, observacion = $8, custodian_id = $9,
			updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.Esigeft, equipment.Esbye, equipment.Tipo,
		equipment.Description, normalize.Fold(equipment.Description), equipment.Unit,
		equipment.Observacion, equipment.CustodianID, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	return nil
}

// UpdateQuantities persiste únicamente los tres contadores y la observación.
// Es la única escritura que el ledger hace sobre equipment.
func (r *EquipmentRepo) UpdateQuantities(equipment *entity.Equipment) error {
	query := `
		UPDATE equipment SET material_servible = $2, material_caducado = $3,
			material_prestado = $4, observacion = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.MaterialServible, equipment.MaterialCaducado,
		equipment.MaterialPrestado, equipment.Observacion, equipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipment quantities: %w", err)
	}
	return nil
}

// List lista equipos con filtros opcionales de sucursal, tipo y búsqueda normalizada.
func (r *EquipmentRepo) List(filter repository.EquipmentFilter, limit, offset int) ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.BranchID != "" {
		query += fmt.Sprintf(" AND branch_id = $%d", pos)
		args = append(args, filter.BranchID)
		pos++
	}
	if filter.Tipo != "" {
		query += fmt.Sprintf(" AND tipo = $%d", pos)
		args = append(args, filter.Tipo)
		pos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND description_norm LIKE $%d", pos)
		args = append(args, "%"+filter.Search+"%")
		pos++
	}
	query += fmt.Sprintf(" ORDER BY tipo, description LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Delete elimina un equipo por ID. El caso de uso verifica antes que no existan
// préstamos abiertos.
func (r *EquipmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	return nil
}

func (r *EquipmentRepo) scanOne(row pgx.Row, op string) (*entity.Equipment, error) {
	e, err := scanEquipmentRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return e, nil
}

func scanEquipmentRow(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID, &e.Esigeft, &e.Esbye, &e.Tipo, &e.Description, &e.Unit,
		&e.MaterialServible, &e.MaterialCaducado, &e.MaterialPrestado,
		&e.Observacion, &e.CustodianID, &e.BranchID, &e.EntryDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEquipment(rows pgx.Rows) (*entity.Equipment, error) {
	e, err := scanEquipmentRow(rows)
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return e, nil
}
