package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin  = "SUPER_ADMIN"
	RoleBranchAdmin = "BRANCH_ADMIN"
)

// Estados de cuenta.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano después de persistir
	Role         string // SUPER_ADMIN | BRANCH_ADMIN
	BranchID     string // vacío para SUPER_ADMIN sin sucursal fija
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
