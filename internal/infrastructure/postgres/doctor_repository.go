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

var _ repository.DoctorRepository = (*DoctorRepo)(nil)

const doctorColumns = `id, name, specialty, phone, email, is_intern, COALESCE(mentor_id::text, ''), created_at, updated_at`

// DoctorRepo implementación de DoctorRepository sobre PostgreSQL.
type DoctorRepo struct {
	q Querier
}

// NewDoctorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDoctorRepository(q Querier) *DoctorRepo {
	return &DoctorRepo{q: q}
}

// Create persiste un nuevo médico.
func (r *DoctorRepo) Create(doctor *entity.Doctor) error {
	query := `
		INSERT INTO doctors (id, name, specialty, phone, email, is_intern, mentor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		doctor.ID, doctor.Name, doctor.Specialty, doctor.Phone, doctor.Email,
		doctor.IsIntern, doctor.MentorID, doctor.CreatedAt, doctor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert doctor: %w", err)
	}
	return nil
}

// GetByID obtiene un médico por ID.
func (r *DoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`
	d, err := scanDoctor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

// Update actualiza un médico existente.
func (r *DoctorRepo) Update(doctor *entity.Doctor) error {
	query := `
		UPDATE doctors SET name = $2, specialty = $3, phone = $4, email = $5,
			is_intern = $6, mentor_id = NULLIF($7, ''), updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doctor.ID, doctor.Name, doctor.Specialty, doctor.Phone, doctor.Email,
		doctor.IsIntern, doctor.MentorID, doctor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	return nil
}

// List lista médicos con paginación.
func (r *DoctorRepo) List(limit, offset int) ([]*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()
	return scanDoctors(rows)
}

// ListInterns internos cuyo mentor es el médico dado.
func (r *DoctorRepo) ListInterns(mentorID string) ([]*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE mentor_id = $1 AND is_intern ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, mentorID)
	if err != nil {
		return nil, fmt.Errorf("list interns: %w", err)
	}
	defer rows.Close()
	return scanDoctors(rows)
}

// CountPatients cuenta los pacientes tratados por un médico.
func (r *DoctorRepo) CountPatients(doctorID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM patients WHERE doctor_id = $1`,
		doctorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count patients: %w", err)
	}
	return count, nil
}

// Delete elimina un médico por ID.
func (r *DoctorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	return nil
}

func scanDoctor(row pgx.Row) (*entity.Doctor, error) {
	var d entity.Doctor
	err := row.Scan(
		&d.ID, &d.Name, &d.Specialty, &d.Phone, &d.Email, &d.IsIntern, &d.MentorID,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDoctors(rows pgx.Rows) ([]*entity.Doctor, error) {
	var list []*entity.Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
