package entity

import "time"

// Estados de una visita.
const (
	VisitScheduled  = "scheduled"
	VisitInProgress = "in_progress"
	VisitCompleted  = "completed"
	VisitCancelled  = "cancelled"
)

// VisitNumberPlaceholder valor del número antes de asignar la secuencia.
const VisitNumberPlaceholder = "New"

// Visit visita de un paciente a un médico, numerada por secuencia.
type Visit struct {
	ID           string
	Number       string // secuencia hr_hospital.visit
	PatientID    string
	DoctorID     string
	VisitDate    time.Time
	Diagnosis    string
	Prescription string
	Notes        string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
