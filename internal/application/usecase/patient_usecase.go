package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// PatientUseCase CRUD de pacientes. La edad nunca se almacena: se deriva de
// la fecha de nacimiento en cada respuesta.
type PatientUseCase struct {
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	diseaseRepo repository.DiseaseRepository
}

// NewPatientUseCase construye el caso de uso.
func NewPatientUseCase(
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	diseaseRepo repository.DiseaseRepository,
) *PatientUseCase {
	return &PatientUseCase{patientRepo: patientRepo, doctorRepo: doctorRepo, diseaseRepo: diseaseRepo}
}

func (uc *PatientUseCase) checkDoctor(doctorID string) error {
	doctor, err := uc.doctorRepo.GetByID(doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return fmt.Errorf("%w: el médico tratante no existe", domain.ErrValidation)
	}
	return nil
}

func (uc *PatientUseCase) checkDiseases(ids []string) error {
	for _, id := range ids {
		disease, err := uc.diseaseRepo.GetByID(id)
		if err != nil {
			return err
		}
		if disease == nil {
			return fmt.Errorf("%w: la enfermedad %s no existe", domain.ErrValidation, id)
		}
	}
	return nil
}

// Create da de alta un paciente con su médico tratante y enfermedades.
func (uc *PatientUseCase) Create(in dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	if in.BirthDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: la fecha de nacimiento no puede ser futura", domain.ErrValidation)
	}
	if err := uc.checkDoctor(in.DoctorID); err != nil {
		return nil, err
	}
	if err := uc.checkDiseases(in.DiseaseIDs); err != nil {
		return nil, err
	}
	now := time.Now()
	patient := &entity.Patient{
		ID:         uuid.New().String(),
		Name:       in.Name,
		BirthDate:  in.BirthDate,
		Gender:     in.Gender,
		Phone:      in.Phone,
		Email:      in.Email,
		Address:    in.Address,
		DoctorID:   in.DoctorID,
		DiseaseIDs: in.DiseaseIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.patientRepo.Create(patient); err != nil {
		return nil, err
	}
	if len(in.DiseaseIDs) > 0 {
		if err := uc.patientRepo.SetDiseases(patient.ID, in.DiseaseIDs); err != nil {
			return nil, err
		}
	}
	return toPatientResponse(patient), nil
}

// GetByID obtiene un paciente por ID.
func (uc *PatientUseCase) GetByID(id string) (*dto.PatientResponse, error) {
	patient, err := uc.patientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	return toPatientResponse(patient), nil
}

// Update actualiza un paciente; disease_ids reemplaza el conjunto completo.
func (uc *PatientUseCase) Update(id string, in dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := uc.patientRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	if in.Name != nil {
		patient.Name = *in.Name
	}
	if in.BirthDate != nil {
		if in.BirthDate.After(time.Now()) {
			return nil, fmt.Errorf("%w: la fecha de nacimiento no puede ser futura", domain.ErrValidation)
		}
		patient.BirthDate = *in.BirthDate
	}
	if in.Gender != nil {
		patient.Gender = *in.Gender
	}
	if in.Phone != nil {
		patient.Phone = *in.Phone
	}
	if in.Email != nil {
		patient.Email = *in.Email
	}
	if in.Address != nil {
		patient.Address = *in.Address
	}
	if in.DoctorID != nil && *in.DoctorID != patient.DoctorID {
		if err := uc.checkDoctor(*in.DoctorID); err != nil {
			return nil, err
		}
		patient.DoctorID = *in.DoctorID
	}
	patient.UpdatedAt = time.Now()
	if err := uc.patientRepo.Update(patient); err != nil {
		return nil, err
	}
	if in.DiseaseIDs != nil {
		if err := uc.checkDiseases(*in.DiseaseIDs); err != nil {
			return nil, err
		}
		if err := uc.patientRepo.SetDiseases(id, *in.DiseaseIDs); err != nil {
			return nil, err
		}
		patient.DiseaseIDs = *in.DiseaseIDs
	}
	return toPatientResponse(patient), nil
}

// List lista pacientes con paginación.
func (uc *PatientUseCase) List(limit, offset int) (*dto.PatientListResponse, error) {
	list, err := uc.patientRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return patientListResponse(list, limit, offset), nil
}

// ListByDoctor lista los pacientes de un médico.
func (uc *PatientUseCase) ListByDoctor(doctorID string, limit, offset int) (*dto.PatientListResponse, error) {
	if err := uc.checkDoctor(doctorID); err != nil {
		return nil, err
	}
	list, err := uc.patientRepo.ListByDoctor(doctorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return patientListResponse(list, limit, offset), nil
}

// Delete borra un paciente.
func (uc *PatientUseCase) Delete(id string) error {
	patient, err := uc.patientRepo.GetByID(id)
	if err != nil {
		return err
	}
	if patient == nil {
		return domain.ErrNotFound
	}
	return uc.patientRepo.Delete(id)
}

func patientListResponse(list []*entity.Patient, limit, offset int) *dto.PatientListResponse {
	items := make([]dto.PatientResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPatientResponse(p))
	}
	return &dto.PatientListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		ID:         p.ID,
		Name:       p.Name,
		BirthDate:  p.BirthDate,
		Age:        p.Age(time.Now()),
		Gender:     p.Gender,
		Phone:      p.Phone,
		Email:      p.Email,
		Address:    p.Address,
		DoctorID:   p.DoctorID,
		DiseaseIDs: p.DiseaseIDs,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
