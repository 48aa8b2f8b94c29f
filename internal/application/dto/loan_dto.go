package dto

import "time"

// LoanRecordResponse representación de un préstamo.
type LoanRecordResponse struct {
	ID                        string     `json:"id"`
	TransactionID             string     `json:"transaction_id"`
	EquipmentID               string     `json:"equipment_id"`
	Cantidad                  int        `json:"cantidad"`
	ResponsibleName           string     `json:"responsible_name"`
	ResponsibleIdentification string     `json:"responsible_identification,omitempty"`
	ResponsibleArea           string     `json:"responsible_area,omitempty"`
	CustodianID               string     `json:"custodian_id"`
	PerformedByID             string     `json:"performed_by_id"`
	BranchID                  string     `json:"branch_id"`
	LoanDate                  time.Time  `json:"loan_date"`
	ReturnDate                *time.Time `json:"return_date,omitempty"`
	Status                    string     `json:"status"`
	Observacion               string     `json:"observacion,omitempty"`
}

// LoanRecordListResponse listado paginado de préstamos.
type LoanRecordListResponse struct {
	Items []LoanRecordResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
