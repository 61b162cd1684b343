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

var _ repository.PatientRepository = (*PatientRepo)(nil)

const patientColumns = `id, name, birth_date, gender, phone, email, address, doctor_id, created_at, updated_at`

// PatientRepo implementación de PatientRepository sobre PostgreSQL.
// Las enfermedades van en la tabla de unión patient_diseases.
type PatientRepo struct {
	q Querier
}

// NewPatientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPatientRepository(q Querier) *PatientRepo {
	return &PatientRepo{q: q}
}

// Create persiste un nuevo paciente (sin sus enfermedades; usar SetDiseases).
func (r *PatientRepo) Create(patient *entity.Patient) error {
	query := `
		INSERT INTO patients (id, name, birth_date, gender, phone, email, address, doctor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.BirthDate, patient.Gender, patient.Phone,
		patient.Email, patient.Address, patient.DoctorID, patient.CreatedAt, patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

// GetByID obtiene un paciente con sus enfermedades.
func (r *PatientRepo) GetByID(id string) (*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE id = $1`
	var p entity.Patient
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.BirthDate, &p.Gender, &p.Phone, &p.Email, &p.Address,
		&p.DoctorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	diseases, err := r.diseaseIDs(id)
	if err != nil {
		return nil, err
	}
	p.DiseaseIDs = diseases
	return &p, nil
}

// Update actualiza los datos del paciente (las enfermedades van por SetDiseases).
func (r *PatientRepo) Update(patient *entity.Patient) error {
	query := `
		UPDATE patients SET name = $2, birth_date = $3, gender = $4, phone = $5,
			email = $6, address = $7, doctor_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		patient.ID, patient.Name, patient.BirthDate, patient.Gender, patient.Phone,
		patient.Email, patient.Address, patient.DoctorID, patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}
	return nil
}

// List lista pacientes con paginación.
func (r *PatientRepo) List(limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()
	return r.scanWithDiseases(rows)
}

// ListByDoctor pacientes tratados por un médico.
func (r *PatientRepo) ListByDoctor(doctorID string, limit, offset int) ([]*entity.Patient, error) {
	query := `SELECT ` + patientColumns + ` FROM patients WHERE doctor_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, doctorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list patients by doctor: %w", err)
	}
	defer rows.Close()
	return r.scanWithDiseases(rows)
}

// SetDiseases reemplaza el conjunto de enfermedades del paciente.
func (r *PatientRepo) SetDiseases(patientID string, diseaseIDs []string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM patient_diseases WHERE patient_id = $1`, patientID); err != nil {
		return fmt.Errorf("clear patient diseases: %w", err)
	}
	for _, diseaseID := range diseaseIDs {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO patient_diseases (patient_id, disease_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			patientID, diseaseID,
		); err != nil {
			return fmt.Errorf("insert patient disease: %w", err)
		}
	}
	return nil
}

// Delete elimina un paciente; sus filas de patient_diseases caen por FK.
func (r *PatientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	return nil
}

func (r *PatientRepo) diseaseIDs(patientID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT disease_id FROM patient_diseases WHERE patient_id = $1`, patientID)
	if err != nil {
		return nil, fmt.Errorf("list patient diseases: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan disease id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PatientRepo) scanWithDiseases(rows pgx.Rows) ([]*entity.Patient, error) {
	var list []*entity.Patient
	for rows.Next() {
		var p entity.Patient
		if err := rows.Scan(
			&p.ID, &p.Name, &p.BirthDate, &p.Gender, &p.Phone, &p.Email, &p.Address,
			&p.DoctorID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan patient: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Las rows deben cerrarse antes de reusar la conexión para las enfermedades
	rows.Close()
	for _, p := range list {
		diseases, err := r.diseaseIDs(p.ID)
		if err != nil {
			return nil, err
		}
		p.DiseaseIDs = diseases
	}
	return list, nil
}
