package entity

import "time"

// Roles válidos para Account.
const (
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// ValidRole indica si el rol pertenece al catálogo.
func ValidRole(role string) bool {
	return role == RoleManager || role == RoleEmployee
}

// Account representa una cuenta de usuario. Username es único e inmutable.
// Dataset es la última copia persistida; se reemplaza completa en cada carga o guardado.
type Account struct {
	Username     string
	PasswordHash string // bcrypt hash
	Role         string // Manager, Employee
	Dataset      *Dataset
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
