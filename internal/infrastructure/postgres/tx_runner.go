package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/requests"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// Ensure TxRunner implements assets.TxRunner and requests.TxRunner.
var _ assets.TxRunner = (*TxRunner)(nil)
var _ requests.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos de traslados atados a la
// tx y hace Commit o Rollback. Es la unidad atómica de la reasignación:
// secuencia + traslado + activo + auditoría, todo o nada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.AssetMovementRepository,
	assetRepo repository.AssetRepository,
	auditRepo repository.AuditRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	movRepo := NewAssetMovementRepository(tx)
	assetRepo := NewAssetRepository(tx)
	auditRepo := NewAuditRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(movRepo, assetRepo, auditRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunRequest inicia una transacción con repos de solicitudes (alta + envío
// del portal, transiciones con notificación).
func (r *TxRunner) RunRequest(ctx context.Context, fn func(
	reqRepo repository.AssetRequestRepository,
	auditRepo repository.AuditRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	reqRepo := NewAssetRequestRepository(tx)
	auditRepo := NewAuditRepository(tx)
	seqRepo := NewSequenceRepository(tx)

	if err := fn(reqRepo, auditRepo, seqRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
