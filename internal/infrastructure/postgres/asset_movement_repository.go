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

var _ repository.AssetMovementRepository = (*AssetMovementRepo)(nil)

// AssetMovementRepo implementación del libro de traslados sobre PostgreSQL.
// Solo inserta y lee: el libro nunca se edita.
type AssetMovementRepo struct {
	q Querier
}

// NewAssetMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssetMovementRepository(q Querier) *AssetMovementRepo {
	return &AssetMovementRepo{q: q}
}

// Create persiste una entrada del libro de traslados.
func (r *AssetMovementRepo) Create(movement *entity.AssetMovement) error {
	query := `
		INSERT INTO asset_movements (id, number, asset_id, previous_employee_id, employee_id,
			movement_date, movement_type, reason, notes, user_id, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, NULLIF($10, ''), $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Number, movement.AssetID, movement.PreviousEmployeeID,
		movement.EmployeeID, movement.MovementDate, movement.MovementType, movement.Reason,
		movement.Notes, movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.number, m.asset_id, COALESCE(m.previous_employee_id::text, ''), m.employee_id,
		m.movement_date, m.movement_type, m.reason, m.notes, COALESCE(m.user_id::text, ''),
		a.code, c.name, m.created_at
	FROM asset_movements m
	JOIN assets a ON a.id = m.asset_id
	JOIN asset_categories c ON c.id = a.category_id`

// GetByID obtiene un traslado con los campos denormalizados del activo.
func (r *AssetMovementRepo) GetByID(id string) (*entity.AssetMovement, error) {
	row := r.q.QueryRow(context.Background(), movementSelect+` WHERE m.id = $1`, id)
	m, err := scanMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// ListByAsset historial de traslados de un activo, más reciente primero.
func (r *AssetMovementRepo) ListByAsset(assetID string, limit, offset int) ([]*entity.AssetMovement, error) {
	query := movementSelect + ` WHERE m.asset_id = $1 ORDER BY m.movement_date DESC, m.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, assetID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements by asset: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// List lista traslados con paginación, más reciente primero.
func (r *AssetMovementRepo) List(limit, offset int) ([]*entity.AssetMovement, error) {
	query := movementSelect + ` ORDER BY m.movement_date DESC, m.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovement(row pgx.Row) (*entity.AssetMovement, error) {
	var m entity.AssetMovement
	err := row.Scan(
		&m.ID, &m.Number, &m.AssetID, &m.PreviousEmployeeID, &m.EmployeeID,
		&m.MovementDate, &m.MovementType, &m.Reason, &m.Notes, &m.UserID,
		&m.AssetCode, &m.AssetCategory, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMovements(rows pgx.Rows) ([]*entity.AssetMovement, error) {
	var list []*entity.AssetMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
