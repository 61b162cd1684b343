package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// DoctorRepository define el puerto de persistencia para Doctor (DIP).
type DoctorRepository interface {
	Create(doctor *entity.Doctor) error
	GetByID(id string) (*entity.Doctor, error)
	Update(doctor *entity.Doctor) error
	List(limit, offset int) ([]*entity.Doctor, error)
	ListInterns(mentorID string) ([]*entity.Doctor, error)
	CountPatients(doctorID string) (int, error)
	Delete(id string) error
}

// PatientRepository define el puerto de persistencia para Patient (DIP).
type PatientRepository interface {
	Create(patient *entity.Patient) error
	GetByID(id string) (*entity.Patient, error)
	Update(patient *entity.Patient) error
	List(limit, offset int) ([]*entity.Patient, error)
	ListByDoctor(doctorID string, limit, offset int) ([]*entity.Patient, error)
	SetDiseases(patientID string, diseaseIDs []string) error
	Delete(id string) error
}

// DiseaseRepository define el puerto de persistencia para Disease (DIP).
type DiseaseRepository interface {
	Create(disease *entity.Disease) error
	GetByID(id string) (*entity.Disease, error)
	Update(disease *entity.Disease) error
	List(limit, offset int) ([]*entity.Disease, error)
	Delete(id string) error
}

// VisitRepository define el puerto de persistencia para Visit (DIP).
type VisitRepository interface {
	Create(visit *entity.Visit) error
	GetByID(id string) (*entity.Visit, error)
	Update(visit *entity.Visit) error
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Visit, error)
	ListByPatient(patientID string, limit, offset int) ([]*entity.Visit, error)
	ListByDoctor(doctorID string, limit, offset int) ([]*entity.Visit, error)
}
