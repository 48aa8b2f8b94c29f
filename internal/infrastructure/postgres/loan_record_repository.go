package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/davortega/bodega-equipos/internal/domain/entity"
	"github.com/davortega/bodega-equipos/internal/domain/repository"
)

var _ repository.LoanRecordRepository = (*LoanRecordRepo)(nil)

const loanRecordColumns = `id, transaction_id, equipment_id, cantidad,
	responsible_name, responsible_identification, responsible_area,
	custodian_id, performed_by_id, branch_id, loan_date, return_date,
	status, observacion, created_at, updated_at`

// LoanRecordRepo implementación de LoanRecordRepository sobre PostgreSQL.
type LoanRecordRepo struct {
	q Querier
}

func NewLoanRecordRepository(q Querier) *LoanRecordRepo {
	return &LoanRecordRepo{q: q}
}

// Create persiste un préstamo nuevo.
func (r *LoanRecordRepo) Create(loan *entity.LoanRecord) error {
	if loan.ID == "" {
		loan.ID = uuid.New().String()
	}
	query := `
		INSERT INTO loan_records (id, transaction_id, equipment_id, cantidad,
			responsible_name, responsible_identification, responsible_area,
			custodian_id, performed_by_id, branch_id, loan_date, return_date,
			status, observacion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		loan.ID, loan.TransactionID, loan.EquipmentID, loan.Cantidad,
		loan.ResponsibleName, loan.ResponsibleIdentification, loan.ResponsibleArea,
		loan.CustodianID, loan.PerformedByID, loan.BranchID, loan.LoanDate, loan.ReturnDate,
		loan.Status, loan.Observacion, loan.CreatedAt, loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert loan record: %w", err)
	}
	return nil
}

// GetByID obtiene un préstamo por ID. Devuelve nil, nil si no existe.
func (r *LoanRecordRepo) GetByID(id string) (*entity.LoanRecord, error) {
	query := `SELECT ` + loanRecordColumns + ` FROM loan_records WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get loan record")
}

// GetForUpdate bloquea la fila del préstamo para que dos devoluciones
// concurrentes del mismo préstamo se serialicen.
func (r *LoanRecordRepo) GetForUpdate(id string) (*entity.LoanRecord, error) {
	query := `SELECT ` + loanRecordColumns + ` FROM loan_records WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get loan record for update")
}

// Update persiste el cierre del préstamo.
func (r *LoanRecordRepo) Update(loan *entity.LoanRecord) error {
	query := `
		UPDATE loan_records SET return_date = $2, status = $3, observacion = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		loan.ID, loan.ReturnDate, loan.Status, loan.Observacion, loan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update loan record: %w", err)
	}
	return nil
}

// List lista préstamos con filtros opcionales, más reciente primero.
func (r *LoanRecordRepo) List(filter repository.LoanRecordFilter, limit, offset int) ([]*entity.LoanRecord, error) {
	query := `SELECT ` + loanRecordColumns + ` FROM loan_records WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.EquipmentID != "" {
		query += fmt.Sprintf(" AND equipment_id = $%d", pos)
		args = append(args, filter.EquipmentID)
		pos++
	}
	if filter.BranchID != "" {
		query += fmt.Sprintf(" AND branch_id = $%d", pos)
		args = append(args, filter.BranchID)
		pos++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY loan_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list loan records: %w", err)
	}
	defer rows.Close()
	var list []*entity.LoanRecord
	for rows.Next() {
		l, err := scanLoanRecordRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loan record: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// CountOpenByEquipment cuenta préstamos abiertos (status prestado) de un equipo.
func (r *LoanRecordRepo) CountOpenByEquipment(equipmentID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM loan_records WHERE equipment_id = $1 AND status = $2`
	err := r.q.QueryRow(context.Background(), query, equipmentID, entity.LoanStatusPrestado).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count open loans: %w", err)
	}
	return count, nil
}

func (r *LoanRecordRepo) scanOne(row pgx.Row, op string) (*entity.LoanRecord, error) {
	l, err := scanLoanRecordRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return l, nil
}

func scanLoanRecordRow(row pgx.Row) (*entity.LoanRecord, error) {
	var l entity.LoanRecord
	err := row.Scan(
		&l.ID, &l.TransactionID, &l.EquipmentID, &l.Cantidad,
		&l.ResponsibleName, &l.ResponsibleIdentification, &l.ResponsibleArea,
		&l.CustodianID, &l.PerformedByID, &l.BranchID, &l.LoanDate, &l.ReturnDate,
		&l.Status, &l.Observacion, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
