package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
)

func newVisitFixture() (*usecase.VisitUseCase, *fakeVisitRepo) {
	visitRepo := newFakeVisitRepo()
	patientRepo := newFakePatientRepo()
	patientRepo.store["pac-1"] = &entity.Patient{ID: "pac-1", Name: "Carlos Mena", DoctorID: "doc-1"}
	doctorRepo := newFakeDoctorRepo()
	doctorRepo.store["doc-1"] = &entity.Doctor{ID: "doc-1", Name: "Dra. Rivas"}
	seqRepo := &fakeSeqRepo{}
	return usecase.NewVisitUseCase(visitRepo, patientRepo, doctorRepo, seqRepo), visitRepo
}

func TestVisitCreate_NumeradaYAgendada(t *testing.T) {
	uc, _ := newVisitFixture()

	out, err := uc.Create(dto.CreateVisitRequest{PatientID: "pac-1", DoctorID: "doc-1"})
	require.NoError(t, err)

	assert.Equal(t, "VIS-00001", out.Number, "el número sale de la secuencia de visitas")
	assert.Equal(t, entity.VisitScheduled, out.Status)
	assert.False(t, out.VisitDate.IsZero(), "sin fecha explícita la visita queda para hoy")
}

func TestVisitCreate_SecuenciaMonotonica(t *testing.T) {
	uc, _ := newVisitFixture()

	first, err := uc.Create(dto.CreateVisitRequest{PatientID: "pac-1", DoctorID: "doc-1"})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateVisitRequest{PatientID: "pac-1", DoctorID: "doc-1"})
	require.NoError(t, err)

	assert.Equal(t, "VIS-00001", first.Number)
	assert.Equal(t, "VIS-00002", second.Number)
}

func TestVisitCreate_PacienteInexistenteRechazado(t *testing.T) {
	uc, _ := newVisitFixture()

	_, err := uc.Create(dto.CreateVisitRequest{PatientID: "no-existe", DoctorID: "doc-1"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVisitCreate_MedicoInexistenteRechazado(t *testing.T) {
	uc, _ := newVisitFixture()

	_, err := uc.Create(dto.CreateVisitRequest{PatientID: "pac-1", DoctorID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVisitUpdate_CerradaQuedaCongelada(t *testing.T) {
	uc, repo := newVisitFixture()
	repo.store["vis-1"] = &entity.Visit{ID: "vis-1", Number: "VIS-00001", Status: entity.VisitCompleted}

	diag := "nuevo diagnóstico"
	_, err := uc.Update("vis-1", dto.UpdateVisitRequest{Diagnosis: &diag})
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una visita completada o cancelada no admite más ediciones")
}

func TestVisitUpdate_EnCursoEditable(t *testing.T) {
	uc, repo := newVisitFixture()
	repo.store["vis-1"] = &entity.Visit{ID: "vis-1", Number: "VIS-00001", Status: entity.VisitInProgress, VisitDate: time.Now()}

	diag := "Bronquitis aguda"
	out, err := uc.Update("vis-1", dto.UpdateVisitRequest{Diagnosis: &diag})
	require.NoError(t, err)
	assert.Equal(t, "Bronquitis aguda", out.Diagnosis)
}

func TestVisitComplete_YLuegoCancelarEsConflicto(t *testing.T) {
	uc, repo := newVisitFixture()
	repo.store["vis-1"] = &entity.Visit{ID: "vis-1", Number: "VIS-00001", Status: entity.VisitScheduled}

	require.NoError(t, uc.Complete("vis-1"))
	assert.Equal(t, entity.VisitCompleted, repo.store["vis-1"].Status)

	err := uc.Cancel("vis-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestVisitCancel_Agendada(t *testing.T) {
	uc, repo := newVisitFixture()
	repo.store["vis-1"] = &entity.Visit{ID: "vis-1", Number: "VIS-00001", Status: entity.VisitScheduled}

	require.NoError(t, uc.Cancel("vis-1"))
	assert.Equal(t, entity.VisitCancelled, repo.store["vis-1"].Status)
}

func TestVisitComplete_InexistenteFalla(t *testing.T) {
	uc, _ := newVisitFixture()

	err := uc.Complete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
