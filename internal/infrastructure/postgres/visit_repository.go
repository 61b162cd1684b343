package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

const visitColumns = `id, number, patient_id, doctor_id, visit_date, diagnosis, prescription, notes, status, created_at, updated_at`

// VisitRepo implementación de VisitRepository sobre PostgreSQL.
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// Create persiste una visita. El número ya debe venir asignado.
func (r *VisitRepo) Create(visit *entity.Visit) error {
	query := `
		INSERT INTO visits (id, number, patient_id, doctor_id, visit_date, diagnosis, prescription, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.Number, visit.PatientID, visit.DoctorID, visit.VisitDate,
		visit.Diagnosis, visit.Prescription, visit.Notes, visit.Status,
		visit.CreatedAt, visit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// GetByID obtiene una visita por ID.
func (r *VisitRepo) GetByID(id string) (*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE id = $1`
	v, err := scanVisit(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return v, nil
}

// Update actualiza los campos editables de una visita.
func (r *VisitRepo) Update(visit *entity.Visit) error {
	query := `
		UPDATE visits SET visit_date = $2, diagnosis = $3, prescription = $4, notes = $5,
			status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.VisitDate, visit.Diagnosis, visit.Prescription, visit.Notes,
		visit.Status, visit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de la visita.
func (r *VisitRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE visits SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update visit status: %w", err)
	}
	return nil
}

// List lista visitas, más reciente primero.
func (r *VisitRepo) List(limit, offset int) ([]*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits ORDER BY visit_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

// ListByPatient historial de visitas de un paciente.
func (r *VisitRepo) ListByPatient(patientID string, limit, offset int) ([]*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE patient_id = $1 ORDER BY visit_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, patientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visits by patient: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

// ListByDoctor agenda de un médico.
func (r *VisitRepo) ListByDoctor(doctorID string, limit, offset int) ([]*entity.Visit, error) {
	query := `SELECT ` + visitColumns + ` FROM visits WHERE doctor_id = $1 ORDER BY visit_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, doctorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list visits by doctor: %w", err)
	}
	defer rows.Close()
	return scanVisits(rows)
}

func scanVisit(row pgx.Row) (*entity.Visit, error) {
	var v entity.Visit
	err := row.Scan(
		&v.ID, &v.Number, &v.PatientID, &v.DoctorID, &v.VisitDate, &v.Diagnosis,
		&v.Prescription, &v.Notes, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanVisits(rows pgx.Rows) ([]*entity.Visit, error) {
	var list []*entity.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
