package dto

// RegisterIncomeRequest body para POST /api/inventory/:id/income.
type RegisterIncomeRequest struct {
	Cantidad    int    `json:"cantidad"`
	Tipo        string `json:"tipo"` // servible | caducado
	Observacion string `json:"observacion,omitempty"`
}

// RegisterOutcomeRequest body para POST /api/inventory/:id/outcome.
type RegisterOutcomeRequest struct {
	Cantidad                  int    `json:"cantidad"`
	ResponsibleName           string `json:"responsible_name"`
	ResponsibleIdentification string `json:"responsible_identification,omitempty"`
	ResponsibleArea           string `json:"responsible_area,omitempty"`
	CustodianID               string `json:"custodian_id"`
	Observacion               string `json:"observacion,omitempty"`
}

// RegisterReturnRequest body para POST /api/loans/:id/return.
type RegisterReturnRequest struct {
	Observacion string `json:"observacion,omitempty"`
}

// OutcomeResponse respuesta del egreso: snapshot del equipo + préstamo creado.
type OutcomeResponse struct {
	Equipment  EquipmentResponse  `json:"equipment"`
	LoanRecord LoanRecordResponse `json:"loan_record"`
}

// ReturnResponse respuesta de la devolución: snapshot del equipo + préstamo cerrado.
type ReturnResponse struct {
	Equipment  EquipmentResponse  `json:"equipment"`
	LoanRecord LoanRecordResponse `json:"loan_record"`
}
