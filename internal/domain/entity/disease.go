package entity

import "time"

// Categorías de enfermedad.
const (
	DiseaseInfectious = "infectious"
	DiseaseChronic    = "chronic"
	DiseaseGenetic    = "genetic"
	DiseaseOther      = "other"
)

// Disease catálogo de enfermedades.
type Disease struct {
	ID          string
	Name        string
	Code        string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
