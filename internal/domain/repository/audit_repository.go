package repository

import "github.com/jhoicas/Activos-api/internal/domain/entity"

// AuditRepository puerto del log de actividad adjuntable a cualquier registro,
// con fan-out de notificaciones a los destinatarios de cada entrada.
// El core solo lo consume; el transporte real (correo, chatter) es ajeno.
type AuditRepository interface {
	Append(entry *entity.AuditEntry) error
	ListByRecord(recordType, recordID string, limit, offset int) ([]*entity.AuditEntry, error)
}
