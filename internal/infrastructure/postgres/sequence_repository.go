package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo generador de números por código sobre PostgreSQL.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// NextByCode incrementa y devuelve el siguiente valor de la secuencia en un
// solo statement. Bajo creadores concurrentes el row lock del UPDATE
// serializa los incrementos; no hay ventana leer-luego-escribir.
func (r *SequenceRepo) NextByCode(code string) (int64, error) {
	query := `
		INSERT INTO sequences (code, value) VALUES ($1, 1)
		ON CONFLICT (code) DO UPDATE SET value = sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, code).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", code, err)
	}
	return value, nil
}
