package dto

import "time"

// CreateEquipmentRequest body para POST /api/equipment.
type CreateEquipmentRequest struct {
	Esigeft          bool   `json:"esigeft"`
	Esbye            bool   `json:"esbye"`
	Tipo             string `json:"tipo"`
	Description      string `json:"description"`
	Unit             string `json:"unit"`
	MaterialServible int    `json:"material_servible"`
	MaterialCaducado int    `json:"material_caducado"`
	Observacion      string `json:"observacion,omitempty"`
	CustodianID      string `json:"custodian_id"`
	BranchID         string `json:"branch_id"`
}

// UpdateEquipmentRequest body para PUT /api/equipment/:id. Solo metadata: los
// contadores se mutan únicamente vía las operaciones del ledger.
type UpdateEquipmentRequest struct {
	Esigeft     *bool   `json:"esigeft,omitempty"`
	Esbye       *bool   `json:"esbye,omitempty"`
	Tipo        *string `json:"tipo,omitempty"`
	Description *string `json:"description,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Observacion *string `json:"observacion,omitempty"`
	CustodianID *string `json:"custodian_id,omitempty"`
}

// EquipmentResponse representación de un equipo con sus totales derivados.
type EquipmentResponse struct {
	ID               string    `json:"id"`
	Esigeft          bool      `json:"esigeft"`
	Esbye            bool      `json:"esbye"`
	Tipo             string    `json:"tipo"`
	Description      string    `json:"description"`
	Unit             string    `json:"unit"`
	MaterialServible int       `json:"material_servible"`
	MaterialCaducado int       `json:"material_caducado"`
	MaterialPrestado int       `json:"material_prestado"`
	TotalEnBodega    int       `json:"total_en_bodega"` // derivado: servible + caducado
	Total            int       `json:"total"`           // derivado: totalEnBodega + prestado
	Observacion      string    `json:"observacion,omitempty"`
	CustodianID      string    `json:"custodian_id"`
	BranchID         string    `json:"branch_id"`
	EntryDate        time.Time `json:"entry_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// EquipmentListResponse listado paginado de equipos.
type EquipmentListResponse struct {
	Items []EquipmentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
