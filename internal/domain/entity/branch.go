package entity

import "time"

// Branch representa una sucursal con su propia bodega.
type Branch struct {
	ID        string
	Name      string
	Location  string
	ManagerID string
	CreatedAt time.Time
	UpdatedAt time.Time
}
