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

var _ repository.DiseaseRepository = (*DiseaseRepo)(nil)

// DiseaseRepo implementación de DiseaseRepository sobre PostgreSQL.
type DiseaseRepo struct {
	q Querier
}

// NewDiseaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDiseaseRepository(q Querier) *DiseaseRepo {
	return &DiseaseRepo{q: q}
}

// Create persiste una enfermedad. El código es único.
func (r *DiseaseRepo) Create(disease *entity.Disease) error {
	query := `
		INSERT INTO diseases (id, name, code, description, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		disease.ID, disease.Name, disease.Code, disease.Description, disease.Category,
		disease.CreatedAt, disease.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert disease: %w", err)
	}
	return nil
}

// GetByID obtiene una enfermedad por ID.
func (r *DiseaseRepo) GetByID(id string) (*entity.Disease, error) {
	query := `SELECT id, name, code, description, category, created_at, updated_at FROM diseases WHERE id = $1`
	var d entity.Disease
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Name, &d.Code, &d.Description, &d.Category, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get disease: %w", err)
	}
	return &d, nil
}

// Update actualiza una enfermedad existente.
func (r *DiseaseRepo) Update(disease *entity.Disease) error {
	query := `
		UPDATE diseases SET name = $2, code = $3, description = $4, category = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		disease.ID, disease.Name, disease.Code, disease.Description, disease.Category, disease.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update disease: %w", err)
	}
	return nil
}

// List lista enfermedades con paginación.
func (r *DiseaseRepo) List(limit, offset int) ([]*entity.Disease, error) {
	query := `SELECT id, name, code, description, category, created_at, updated_at FROM diseases ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list diseases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Disease
	for rows.Next() {
		var d entity.Disease
		if err := rows.Scan(&d.ID, &d.Name, &d.Code, &d.Description, &d.Category, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan disease: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Delete elimina una enfermedad del catálogo.
func (r *DiseaseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM diseases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete disease: %w", err)
	}
	return nil
}
