package dto

import "time"

// MovementResponse representación de una entrada del historial de movimientos.
type MovementResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transaction_id"`
	EquipmentID   string    `json:"equipment_id"`
	Type          string    `json:"type"`
	Quantity      int       `json:"quantity"`
	ResponsibleID string    `json:"responsible_id"`
	PerformedByID string    `json:"performed_by_id"`
	BranchID      string    `json:"branch_id"`
	Timestamp     time.Time `json:"timestamp"`
	Reason        string    `json:"reason,omitempty"`
}

// MovementListResponse listado paginado de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
