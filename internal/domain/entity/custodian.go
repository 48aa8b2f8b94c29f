package entity

import "time"

// Custodian es la persona responsable del inventario en bodega; autoriza egresos.
type Custodian struct {
	ID             string
	Name           string
	Rank           string // rango (opcional)
	Identification string // cédula, única
	Area           string // área o dependencia (opcional)
	IsActive       bool
	IsDefault      bool // custodio por defecto para nuevos equipos
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
