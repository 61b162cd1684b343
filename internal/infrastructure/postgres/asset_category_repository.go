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

var _ repository.AssetCategoryRepository = (*AssetCategoryRepo)(nil)

// AssetCategoryRepo implementación de AssetCategoryRepository sobre PostgreSQL.
// La FK parent_id lleva ON DELETE CASCADE: borrar una categoría arrastra a las hijas.
type AssetCategoryRepo struct {
	q Querier
}

// NewAssetCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssetCategoryRepository(q Querier) *AssetCategoryRepo {
	return &AssetCategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *AssetCategoryRepo) Create(category *entity.AssetCategory) error {
	query := `
		INSERT INTO asset_categories (id, name, code, description, parent_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Code, category.Description,
		category.ParentID, category.Active, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *AssetCategoryRepo) GetByID(id string) (*entity.AssetCategory, error) {
	query := `
		SELECT id, name, code, description, COALESCE(parent_id::text, ''), active, created_at, updated_at
		FROM asset_categories WHERE id = $1`
	var c entity.AssetCategory
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Code, &c.Description, &c.ParentID, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *AssetCategoryRepo) Update(category *entity.AssetCategory) error {
	query := `
		UPDATE asset_categories SET name = $2, code = $3, description = $4, parent_id = NULLIF($5, ''),
			active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Code, category.Description,
		category.ParentID, category.Active, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista categorías con paginación.
func (r *AssetCategoryRepo) List(limit, offset int) ([]*entity.AssetCategory, error) {
	query := `
		SELECT id, name, code, description, COALESCE(parent_id::text, ''), active, created_at, updated_at
		FROM asset_categories ORDER BY name ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// ListByParent lista las categorías hijas de un padre.
func (r *AssetCategoryRepo) ListByParent(parentID string) ([]*entity.AssetCategory, error) {
	query := `
		SELECT id, name, code, description, COALESCE(parent_id::text, ''), active, created_at, updated_at
		FROM asset_categories WHERE parent_id = $1 ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list child categories: %w", err)
	}
	defer rows.Close()
	return scanCategories(rows)
}

// Delete elimina una categoría; las hijas caen por la FK en cascada.
func (r *AssetCategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM asset_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func scanCategories(rows pgx.Rows) ([]*entity.AssetCategory, error) {
	var list []*entity.AssetCategory
	for rows.Next() {
		var c entity.AssetCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description, &c.ParentID, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
