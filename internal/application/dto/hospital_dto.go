package dto

import "time"

// CreateDoctorRequest alta de médico.
type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	IsIntern  bool   `json:"is_intern"`
	MentorID  string `json:"mentor_id" validate:"omitempty,uuid4"`
}

// UpdateDoctorRequest actualización parcial de médico.
type UpdateDoctorRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	IsIntern  *bool   `json:"is_intern"`
	MentorID  *string `json:"mentor_id"`
}

// DoctorResponse médico con conteo de pacientes.
type DoctorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	IsIntern     bool      `json:"is_intern"`
	MentorID     string    `json:"mentor_id,omitempty"`
	PatientCount int       `json:"patient_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DoctorListResponse listado paginado de médicos.
type DoctorListResponse struct {
	Items []DoctorResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// CreatePatientRequest alta de paciente.
type CreatePatientRequest struct {
	Name       string    `json:"name" validate:"required"`
	BirthDate  time.Time `json:"birth_date" validate:"required"`
	Gender     string    `json:"gender" validate:"required,oneof=male female other"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email" validate:"omitempty,email"`
	Address    string    `json:"address"`
	DoctorID   string    `json:"doctor_id" validate:"required,uuid4"`
	DiseaseIDs []string  `json:"disease_ids" validate:"omitempty,dive,uuid4"`
}

// UpdatePatientRequest actualización parcial de paciente.
type UpdatePatientRequest struct {
	Name       *string    `json:"name"`
	BirthDate  *time.Time `json:"birth_date"`
	Gender     *string    `json:"gender"`
	Phone      *string    `json:"phone"`
	Email      *string    `json:"email"`
	Address    *string    `json:"address"`
	DoctorID   *string    `json:"doctor_id"`
	DiseaseIDs *[]string  `json:"disease_ids"`
}

// PatientResponse paciente con edad derivada.
type PatientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	BirthDate  time.Time `json:"birth_date"`
	Age        int       `json:"age"`
	Gender     string    `json:"gender"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	DoctorID   string    `json:"doctor_id"`
	DiseaseIDs []string  `json:"disease_ids,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PatientListResponse listado paginado de pacientes.
type PatientListResponse struct {
	Items []PatientResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateDiseaseRequest alta de enfermedad.
type CreateDiseaseRequest struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"omitempty,oneof=infectious chronic genetic other"`
}

// UpdateDiseaseRequest actualización parcial de enfermedad.
type UpdateDiseaseRequest struct {
	Name        *string `json:"name"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,oneof=infectious chronic genetic other"`
}

// DiseaseResponse enfermedad del catálogo.
type DiseaseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DiseaseListResponse listado paginado de enfermedades.
type DiseaseListResponse struct {
	Items []DiseaseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateVisitRequest alta de visita. El número lo asigna la secuencia.
type CreateVisitRequest struct {
	PatientID    string     `json:"patient_id" validate:"required,uuid4"`
	DoctorID     string     `json:"doctor_id" validate:"required,uuid4"`
	VisitDate    *time.Time `json:"visit_date"`
	Diagnosis    string     `json:"diagnosis"`
	Prescription string     `json:"prescription"`
	Notes        string     `json:"notes"`
}

// UpdateVisitRequest actualización parcial de visita.
type UpdateVisitRequest struct {
	VisitDate    *time.Time `json:"visit_date"`
	Diagnosis    *string    `json:"diagnosis"`
	Prescription *string    `json:"prescription"`
	Notes        *string    `json:"notes"`
	Status       *string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled"`
}

// VisitResponse visita numerada.
type VisitResponse struct {
	ID           string    `json:"id"`
	Number       string    `json:"number"`
	PatientID    string    `json:"patient_id"`
	DoctorID     string    `json:"doctor_id"`
	VisitDate    time.Time `json:"visit_date"`
	Diagnosis    string    `json:"diagnosis,omitempty"`
	Prescription string    `json:"prescription,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VisitListResponse listado paginado de visitas.
type VisitListResponse struct {
	Items []VisitResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
