package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo log de actividad sobre PostgreSQL. Append-only; los destinatarios
// se guardan como text[] en la misma fila.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Append agrega una entrada al log de un registro.
func (r *AuditRepo) Append(entry *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (id, record_type, record_id, body, author_id, recipient_ids, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.RecordType, entry.RecordID, entry.Body, entry.AuthorID,
		entry.RecipientIDs, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByRecord entradas del log de un registro, de la más antigua a la más reciente.
func (r *AuditRepo) ListByRecord(recordType, recordID string, limit, offset int) ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, record_type, record_id, body, COALESCE(author_id::text, ''), recipient_ids, created_at
		FROM audit_entries
		WHERE record_type = $1 AND record_id = $2
		ORDER BY created_at ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, recordType, recordID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		if err := rows.Scan(&e.ID, &e.RecordType, &e.RecordID, &e.Body, &e.AuthorID, &e.RecipientIDs, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
