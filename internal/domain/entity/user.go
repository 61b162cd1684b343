package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleTecnico  = "tecnico"
	RoleEmpleado = "empleado"
)

// StaffRoles roles que gestionan solicitudes y activos desde el backend.
var StaffRoles = []string{RoleAdmin, RoleTecnico}

// User usuario del sistema. EmployeeID enlaza con su registro de contacto
// para el portal (equivalente al partner del usuario).
type User struct {
	ID           string
	EmployeeID   string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, tecnico, empleado
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
