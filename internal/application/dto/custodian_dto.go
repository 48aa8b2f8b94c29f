package dto

import "time"

// CreateCustodianRequest body para POST /api/custodians.
type CreateCustodianRequest struct {
	Name           string `json:"name"`
	Rank           string `json:"rank,omitempty"`
	Identification string `json:"identification"`
	Area           string `json:"area,omitempty"`
	IsDefault      bool   `json:"is_default"`
}

// UpdateCustodianRequest body para PUT /api/custodians/:id.
type UpdateCustodianRequest struct {
	Name      *string `json:"name,omitempty"`
	Rank      *string `json:"rank,omitempty"`
	Area      *string `json:"area,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
	IsDefault *bool   `json:"is_default,omitempty"`
}

// CustodianResponse representación de un custodio.
type CustodianResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Rank           string    `json:"rank,omitempty"`
	Identification string    `json:"identification"`
	Area           string    `json:"area,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsDefault      bool      `json:"is_default"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CustodianListResponse listado paginado de custodios.
type CustodianListResponse struct {
	Items []CustodianResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
