package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

const assetColumns = `id, name, code, category_id, description, serial_number, manufacturer, model,
		specifications, purchase_date, purchase_price, warranty_end, state, employee_id,
		assignment_date, active, notes, created_at, updated_at`

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para activos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

// Create persiste un nuevo activo. El código inventario ya debe venir asignado.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (id, name, code, category_id, description, serial_number, manufacturer, model,
			specifications, purchase_date, purchase_price, warranty_end, state, employee_id,
			assignment_date, active, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NULLIF($14, ''), $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Name, asset.Code, asset.CategoryID, asset.Description, asset.SerialNumber,
		asset.Manufacturer, asset.Model, asset.Specifications, asset.PurchaseDate, asset.PurchasePrice,
		asset.WarrantyEnd, asset.State, asset.EmployeeID, asset.AssignmentDate, asset.Active,
		asset.Notes, asset.CreatedAt, asset.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByID obtiene un activo por ID.
func (r *AssetRepo) GetByID(id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtiene un activo por su número de inventario.
func (r *AssetRepo) GetByCode(code string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// Update actualiza los campos editables. Nunca toca code, state, employee_id
// ni active: esos cambian solo por sus caminos dedicados.
func (r *AssetRepo) Update(asset *entity.Asset) error {
	query := `
		UPDATE assets SET name = $2, category_id = $3, description = $4, serial_number = $5,
			manufacturer = $6, model = $7, specifications = $8, purchase_date = $9,
			purchase_price = $10, warranty_end = $11, notes = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.Name, asset.CategoryID, asset.Description, asset.SerialNumber,
		asset.Manufacturer, asset.Model, asset.Specifications, asset.PurchaseDate,
		asset.PurchasePrice, asset.WarrantyEnd, asset.Notes, asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update asset: %w", err)
	}
	return nil
}

// UpdateEmployee sobreescribe el empleado asignado y su fecha. Empleado vacío
// devuelve el activo al almacén (estado available).
func (r *AssetRepo) UpdateEmployee(assetID, employeeID string, assignmentDate *time.Time) error {
	var query string
	var err error
	if employeeID == "" {
		query = `
			UPDATE assets SET employee_id = NULL, assignment_date = NULL, state = $2, updated_at = now()
			WHERE id = $1`
		_, err = r.q.Exec(context.Background(), query, assetID, entity.AssetStateAvailable)
	} else {
		query = `
			UPDATE assets SET employee_id = $2, assignment_date = $3, state = $4, updated_at = now()
			WHERE id = $1`
		_, err = r.q.Exec(context.Background(), query, assetID, employeeID, assignmentDate, entity.AssetStateAssigned)
	}
	if err != nil {
		return fmt.Errorf("update asset employee: %w", err)
	}
	return nil
}

// UpdateState cambia estado y bandera de archivado.
func (r *AssetRepo) UpdateState(assetID, state string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE assets SET state = $2, active = $3, updated_at = now() WHERE id = $1`,
		assetID, state, active,
	)
	if err != nil {
		return fmt.Errorf("update asset state: %w", err)
	}
	return nil
}

// List lista activos activos con paginación.
func (r *AssetRepo) List(limit, offset int) ([]*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE active ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListByEmployee lista los activos de un empleado filtrando por estados, con
// el ordenamiento del portal.
func (r *AssetRepo) ListByEmployee(employeeID string, states []string, sortBy string, limit, offset int) ([]*entity.Asset, error) {
	orderBy := "assignment_date DESC NULLS LAST"
	switch sortBy {
	case repository.AssetSortName:
		orderBy = "name ASC"
	case repository.AssetSortCategory:
		orderBy = "category_id ASC, name ASC"
	}
	query := `SELECT ` + assetColumns + `
		FROM assets
		WHERE employee_id = $1 AND state = ANY($2) AND active
		ORDER BY ` + orderBy + ` LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, employeeID, states, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list assets by employee: %w", err)
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// CountByEmployee cuenta los activos de un empleado en los estados dados.
func (r *AssetRepo) CountByEmployee(employeeID string, states []string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM assets WHERE employee_id = $1 AND state = ANY($2) AND active`,
		employeeID, states,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count assets by employee: %w", err)
	}
	return count, nil
}

// CountByCategory cuenta los activos de una categoría.
func (r *AssetRepo) CountByCategory(categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM assets WHERE category_id = $1 AND active`,
		categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count assets by category: %w", err)
	}
	return count, nil
}

// Delete elimina un activo por ID.
func (r *AssetRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

func (r *AssetRepo) scanOne(row pgx.Row) (*entity.Asset, error) {
	var a entity.Asset
	var employeeID *string
	err := row.Scan(
		&a.ID, &a.Name, &a.Code, &a.CategoryID, &a.Description, &a.SerialNumber, &a.Manufacturer,
		&a.Model, &a.Specifications, &a.PurchaseDate, &a.PurchasePrice, &a.WarrantyEnd, &a.State,
		&employeeID, &a.AssignmentDate, &a.Active, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	if employeeID != nil {
		a.EmployeeID = *employeeID
	}
	return &a, nil
}

func (r *AssetRepo) scanMany(rows pgx.Rows) ([]*entity.Asset, error) {
	var list []*entity.Asset
	for rows.Next() {
		var a entity.Asset
		var employeeID *string
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Code, &a.CategoryID, &a.Description, &a.SerialNumber, &a.Manufacturer,
			&a.Model, &a.Specifications, &a.PurchaseDate, &a.PurchasePrice, &a.WarrantyEnd, &a.State,
			&employeeID, &a.AssignmentDate, &a.Active, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		if employeeID != nil {
			a.EmployeeID = *employeeID
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
