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
	"github.com/jhoicas/Activos-api/internal/domain/workflow"
)

var _ repository.AssetRequestRepository = (*AssetRequestRepo)(nil)

const requestColumns = `id, number, request_type, requester_id, COALESCE(asset_id::text, ''),
		COALESCE(category_id::text, ''), description, justification, state, priority,
		COALESCE(assigned_to_id::text, ''), request_date, expected_date, completion_date,
		comments, created_at, updated_at`

// AssetRequestRepo implementación de AssetRequestRepository sobre PostgreSQL.
type AssetRequestRepo struct {
	q Querier
}

// NewAssetRequestRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssetRequestRepository(q Querier) *AssetRequestRepo {
	return &AssetRequestRepo{q: q}
}

// Create persiste una nueva solicitud.
func (r *AssetRequestRepo) Create(request *entity.AssetRequest) error {
	query := `
		INSERT INTO asset_requests (id, number, request_type, requester_id, asset_id, category_id,
			description, justification, state, priority, assigned_to_id, request_date,
			expected_date, completion_date, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, NULLIF($11, ''),
			$12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.Number, request.RequestType, request.RequesterID, request.AssetID,
		request.CategoryID, request.Description, request.Justification, string(request.State),
		request.Priority, request.AssignedToID, request.RequestDate, request.ExpectedDate,
		request.CompletionDate, request.Comments, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *AssetRequestRepo) GetByID(id string) (*entity.AssetRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM asset_requests WHERE id = $1`
	req, err := scanRequest(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request: %w", err)
	}
	return req, nil
}

// Update actualiza los campos editables de una solicitud. El estado y el
// responsable cambian solo por UpdateState.
func (r *AssetRequestRepo) Update(request *entity.AssetRequest) error {
	query := `
		UPDATE asset_requests SET request_type = $2, asset_id = NULLIF($3, ''), category_id = NULLIF($4, ''),
			description = $5, justification = $6, priority = $7, expected_date = $8,
			comments = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		request.ID, request.RequestType, request.AssetID, request.CategoryID,
		request.Description, request.Justification, request.Priority, request.ExpectedDate,
		request.Comments, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return nil
}

// UpdateState persiste una transición del workflow.
func (r *AssetRequestRepo) UpdateState(id string, state workflow.State, assignedToID string, completionDate *time.Time) error {
	query := `
		UPDATE asset_requests SET state = $2, assigned_to_id = NULLIF($3, ''), completion_date = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, string(state), assignedToID, completionDate)
	if err != nil {
		return fmt.Errorf("update request state: %w", err)
	}
	return nil
}

// List lista solicitudes con paginación, más reciente primero.
func (r *AssetRequestRepo) List(limit, offset int) ([]*entity.AssetRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM asset_requests ORDER BY request_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

// ListByRequester solicitudes de un empleado con filtro por estado opcional y
// el ordenamiento del portal.
func (r *AssetRequestRepo) ListByRequester(requesterID string, state workflow.State, sortBy string, limit, offset int) ([]*entity.AssetRequest, error) {
	orderBy := "request_date DESC"
	switch sortBy {
	case repository.RequestSortName:
		orderBy = "number ASC"
	case repository.RequestSortState:
		orderBy = "state ASC, request_date DESC"
	}
	query := `SELECT ` + requestColumns + `
		FROM asset_requests
		WHERE requester_id = $1 AND ($2 = '' OR state = $2)
		ORDER BY ` + orderBy + ` LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, requesterID, string(state), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list requests by requester: %w", err)
	}
	defer rows.Close()
	return scanRequests(rows)
}

// CountByRequester cuenta las solicitudes de un empleado, filtradas por estado si aplica.
func (r *AssetRequestRepo) CountByRequester(requesterID string, state workflow.State) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM asset_requests WHERE requester_id = $1 AND ($2 = '' OR state = $2)`,
		requesterID, string(state),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count requests by requester: %w", err)
	}
	return count, nil
}

// CountByAsset cuenta las solicitudes que referencian un activo.
func (r *AssetRequestRepo) CountByAsset(assetID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM asset_requests WHERE asset_id = $1`,
		assetID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count requests by asset: %w", err)
	}
	return count, nil
}

func scanRequest(row pgx.Row) (*entity.AssetRequest, error) {
	var req entity.AssetRequest
	var state string
	err := row.Scan(
		&req.ID, &req.Number, &req.RequestType, &req.RequesterID, &req.AssetID, &req.CategoryID,
		&req.Description, &req.Justification, &state, &req.Priority, &req.AssignedToID,
		&req.RequestDate, &req.ExpectedDate, &req.CompletionDate, &req.Comments,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	req.State = workflow.State(state)
	return &req, nil
}

func scanRequests(rows pgx.Rows) ([]*entity.AssetRequest, error) {
	var list []*entity.AssetRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		list = append(list, req)
	}
	return list, rows.Err()
}
