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

// VisitUseCase visitas de pacientes. El número sale de la secuencia
// hr_hospital.visit y se asigna exactamente una vez.
type VisitUseCase struct {
	visitRepo   repository.VisitRepository
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	seqRepo     repository.SequenceRepository
}

// NewVisitUseCase construye el caso de uso.
func NewVisitUseCase(
	visitRepo repository.VisitRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	seqRepo repository.SequenceRepository,
) *VisitUseCase {
	return &VisitUseCase{
		visitRepo:   visitRepo,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		seqRepo:     seqRepo,
	}
}

// Create agenda una visita. Nace en estado scheduled.
func (uc *VisitUseCase) Create(in dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	patient, err := uc.patientRepo.GetByID(in.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, fmt.Errorf("%w: el paciente no existe", domain.ErrValidation)
	}
	doctor, err := uc.doctorRepo.GetByID(in.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, fmt.Errorf("%w: el médico no existe", domain.ErrValidation)
	}

	seq, err := uc.seqRepo.NextByCode(repository.SeqVisit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visitDate := now
	if in.VisitDate != nil {
		visitDate = *in.VisitDate
	}
	visit := &entity.Visit{
		ID:           uuid.New().String(),
		Number:       fmt.Sprintf("VIS-%05d", seq),
		PatientID:    in.PatientID,
		DoctorID:     in.DoctorID,
		VisitDate:    visitDate,
		Diagnosis:    in.Diagnosis,
		Prescription: in.Prescription,
		Notes:        in.Notes,
		Status:       entity.VisitScheduled,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.visitRepo.Create(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// GetByID obtiene una visita por ID.
func (uc *VisitUseCase) GetByID(id string) (*dto.VisitResponse, error) {
	visit, err := uc.visitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, nil
	}
	return toVisitResponse(visit), nil
}

// Update actualiza una visita. Una visita cancelada o completada queda congelada.
func (uc *VisitUseCase) Update(id string, in dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	visit, err := uc.visitRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, nil
	}
	if visit.Status == entity.VisitCompleted || visit.Status == entity.VisitCancelled {
		return nil, fmt.Errorf("%w: la visita ya está cerrada", domain.ErrConflict)
	}
	if in.VisitDate != nil {
		visit.VisitDate = *in.VisitDate
	}
	if in.Diagnosis != nil {
		visit.Diagnosis = *in.Diagnosis
	}
	if in.Prescription != nil {
		visit.Prescription = *in.Prescription
	}
	if in.Notes != nil {
		visit.Notes = *in.Notes
	}
	if in.Status != nil {
		visit.Status = *in.Status
	}
	visit.UpdatedAt = time.Now()
	if err := uc.visitRepo.Update(visit); err != nil {
		return nil, err
	}
	return toVisitResponse(visit), nil
}

// List lista visitas con paginación.
func (uc *VisitUseCase) List(limit, offset int) (*dto.VisitListResponse, error) {
	list, err := uc.visitRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return visitListResponse(list, limit, offset), nil
}

// ListByPatient historial de visitas de un paciente.
func (uc *VisitUseCase) ListByPatient(patientID string, limit, offset int) (*dto.VisitListResponse, error) {
	list, err := uc.visitRepo.ListByPatient(patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	return visitListResponse(list, limit, offset), nil
}

// ListByDoctor agenda de visitas de un médico.
func (uc *VisitUseCase) ListByDoctor(doctorID string, limit, offset int) (*dto.VisitListResponse, error) {
	list, err := uc.visitRepo.ListByDoctor(doctorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return visitListResponse(list, limit, offset), nil
}

// Cancel cancela una visita agendada o en curso.
func (uc *VisitUseCase) Cancel(id string) error {
	visit, err := uc.visitRepo.GetByID(id)
	if err != nil {
		return err
	}
	if visit == nil {
		return domain.ErrNotFound
	}
	if visit.Status == entity.VisitCompleted || visit.Status == entity.VisitCancelled {
		return fmt.Errorf("%w: la visita ya está cerrada", domain.ErrConflict)
	}
	return uc.visitRepo.UpdateStatus(id, entity.VisitCancelled)
}

// Complete marca una visita como realizada.
func (uc *VisitUseCase) Complete(id string) error {
	visit, err := uc.visitRepo.GetByID(id)
	if err != nil {
		return err
	}
	if visit == nil {
		return domain.ErrNotFound
	}
	if visit.Status == entity.VisitCompleted || visit.Status == entity.VisitCancelled {
		return fmt.Errorf("%w: la visita ya está cerrada", domain.ErrConflict)
	}
	return uc.visitRepo.UpdateStatus(id, entity.VisitCompleted)
}

func visitListResponse(list []*entity.Visit, limit, offset int) *dto.VisitListResponse {
	items := make([]dto.VisitResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVisitResponse(v))
	}
	return &dto.VisitListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

func toVisitResponse(v *entity.Visit) *dto.VisitResponse {
	return &dto.VisitResponse{
		ID:           v.ID,
		Number:       v.Number,
		PatientID:    v.PatientID,
		DoctorID:     v.DoctorID,
		VisitDate:    v.VisitDate,
		Diagnosis:    v.Diagnosis,
		Prescription: v.Prescription,
		Notes:        v.Notes,
		Status:       v.Status,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
