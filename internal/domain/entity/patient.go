package entity

import "time"

// Géneros válidos para Patient.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Patient paciente del hospital con su médico tratante y enfermedades asociadas.
type Patient struct {
	ID         string
	Name       string
	BirthDate  time.Time
	Gender     string
	Phone      string
	Email      string
	Address    string
	DoctorID   string
	DiseaseIDs []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Age edad en años cumplidos a la fecha dada (derivada, nunca almacenada).
func (p *Patient) Age(today time.Time) int {
	if p.BirthDate.IsZero() {
		return 0
	}
	age := today.Year() - p.BirthDate.Year()
	if today.Month() < p.BirthDate.Month() ||
		(today.Month() == p.BirthDate.Month() && today.Day() < p.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
