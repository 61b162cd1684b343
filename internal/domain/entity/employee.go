package entity

import "time"

// Employee registro de contacto de un empleado (persona, nunca empresa).
// Es la identidad a la que se asignan activos y la que firma solicitudes.
type Employee struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
