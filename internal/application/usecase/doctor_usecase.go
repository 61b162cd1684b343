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

// DoctorUseCase CRUD de médicos. Regla central: el mentor de un interno debe
// existir y no puede ser a su vez interno; se revalida en cada escritura.
type DoctorUseCase struct {
	doctorRepo repository.DoctorRepository
}

// NewDoctorUseCase construye el caso de uso.
func NewDoctorUseCase(doctorRepo repository.DoctorRepository) *DoctorUseCase {
	return &DoctorUseCase{doctorRepo: doctorRepo}
}

// checkMentor valida la regla interno/mentor.
func (uc *DoctorUseCase) checkMentor(isIntern bool, mentorID, selfID string) error {
	if !isIntern {
		return nil
	}
	if mentorID == "" {
		return fmt.Errorf("%w: un interno debe tener mentor asignado", domain.ErrValidation)
	}
	if mentorID == selfID {
		return fmt.Errorf("%w: un médico no puede ser su propio mentor", domain.ErrValidation)
	}
	mentor, err := uc.doctorRepo.GetByID(mentorID)
	if err != nil {
		return err
	}
	if mentor == nil {
		return fmt.Errorf("%w: el mentor indicado no existe", domain.ErrValidation)
	}
	if mentor.IsIntern {
		return fmt.Errorf("%w: el mentor no puede ser un interno", domain.ErrValidation)
	}
	return nil
}

// Create da de alta un médico.
func (uc *DoctorUseCase) Create(in dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if err := uc.checkMentor(in.IsIntern, in.MentorID, ""); err != nil {
		return nil, err
	}
	mentorID := in.MentorID
	if !in.IsIntern {
		mentorID = ""
	}
	now := time.Now()
	doctor := &entity.Doctor{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Specialty: in.Specialty,
		Phone:     in.Phone,
		Email:     in.Email,
		IsIntern:  in.IsIntern,
		MentorID:  mentorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.doctorRepo.Create(doctor); err != nil {
		return nil, err
	}
	return uc.toResponse(doctor), nil
}

// GetByID obtiene un médico por ID.
func (uc *DoctorUseCase) GetByID(id string) (*dto.DoctorResponse, error) {
	doctor, err := uc.doctorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, nil
	}
	return uc.toResponse(doctor), nil
}

// Update actualiza un médico revalidando la regla interno/mentor. Quitar la
// condición de interno a quien tiene internos a cargo está permitido; dejar
// de ser elegible como mentor no.
func (uc *DoctorUseCase) Update(id string, in dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := uc.doctorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, nil
	}

	isIntern := doctor.IsIntern
	if in.IsIntern != nil {
		isIntern = *in.IsIntern
	}
	mentorID := doctor.MentorID
	if in.MentorID != nil {
		mentorID = *in.MentorID
	}
	if err := uc.checkMentor(isIntern, mentorID, id); err != nil {
		return nil, err
	}
	if isIntern {
		// Convertirse en interno deja de habilitarlo como mentor de otros
		mentees, err := uc.doctorRepo.ListInterns(id)
		if err != nil {
			return nil, err
		}
		if len(mentees) > 0 {
			return nil, fmt.Errorf("%w: el médico es mentor de internos y no puede pasar a interno", domain.ErrValidation)
		}
	} else {
		mentorID = ""
	}

	if in.Name != nil {
		doctor.Name = *in.Name
	}
	if in.Specialty != nil {
		doctor.Specialty = *in.Specialty
	}
	if in.Phone != nil {
		doctor.Phone = *in.Phone
	}
	if in.Email != nil {
		doctor.Email = *in.Email
	}
	doctor.IsIntern = isIntern
	doctor.MentorID = mentorID
	doctor.UpdatedAt = time.Now()

	if err := uc.doctorRepo.Update(doctor); err != nil {
		return nil, err
	}
	return uc.toResponse(doctor), nil
}

// List lista médicos con paginación.
func (uc *DoctorUseCase) List(limit, offset int) (*dto.DoctorListResponse, error) {
	list, err := uc.doctorRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DoctorResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *uc.toResponse(d))
	}
	return &dto.DoctorListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete borra un médico sin pacientes ni internos a cargo.
func (uc *DoctorUseCase) Delete(id string) error {
	doctor, err := uc.doctorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return domain.ErrNotFound
	}
	patients, err := uc.doctorRepo.CountPatients(id)
	if err != nil {
		return err
	}
	if patients > 0 {
		return fmt.Errorf("%w: el médico tiene pacientes asignados", domain.ErrConflict)
	}
	mentees, err := uc.doctorRepo.ListInterns(id)
	if err != nil {
		return err
	}
	if len(mentees) > 0 {
		return fmt.Errorf("%w: el médico es mentor de internos", domain.ErrConflict)
	}
	return uc.doctorRepo.Delete(id)
}

func (uc *DoctorUseCase) toResponse(d *entity.Doctor) *dto.DoctorResponse {
	patientCount, err := uc.doctorRepo.CountPatients(d.ID)
	if err != nil {
		patientCount = 0
	}
	return &dto.DoctorResponse{
		ID:           d.ID,
		Name:         d.Name,
		Specialty:    d.Specialty,
		Phone:        d.Phone,
		Email:        d.Email,
		IsIntern:     d.IsIntern,
		MentorID:     d.MentorID,
		PatientCount: patientCount,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
