package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Activos-api/internal/domain/workflow"
)

// ──────────────────────────────────────────────────────────────────────────────
// Camino principal
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_CaminoPrincipalCompleto(t *testing.T) {
	steps := []struct {
		from   workflow.State
		action workflow.Action
		to     workflow.State
	}{
		{workflow.StateDraft, workflow.ActionSubmit, workflow.StateSubmitted},
		{workflow.StateSubmitted, workflow.ActionStart, workflow.StateInProgress},
		{workflow.StateInProgress, workflow.ActionApprove, workflow.StateApproved},
		{workflow.StateApproved, workflow.ActionComplete, workflow.StateDone},
	}
	for _, s := range steps {
		got, err := workflow.Apply(s.from, s.action)
		require.NoError(t, err, "la acción %q desde %q debe ser válida", s.action, s.from)
		assert.Equal(t, s.to, got, "estado resultante de %q desde %q", s.action, s.from)
	}
}

func TestApply_AccionFueraDeOrdenFalla(t *testing.T) {
	cases := []struct {
		from   workflow.State
		action workflow.Action
	}{
		{workflow.StateSubmitted, workflow.ActionSubmit},   // reenviar
		{workflow.StateDraft, workflow.ActionStart},        // saltarse el envío
		{workflow.StateDraft, workflow.ActionApprove},      // aprobar sin revisar
		{workflow.StateSubmitted, workflow.ActionComplete}, // cerrar sin aprobar
		{workflow.StateApproved, workflow.ActionStart},     // retroceder
	}
	for _, c := range cases {
		_, err := workflow.Apply(c.from, c.action)
		assert.Error(t, err, "la acción %q desde %q debe rechazarse", c.action, c.from)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas laterales: reject y cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_RechazoYCancelacionDesdeNoTerminales(t *testing.T) {
	nonTerminal := []workflow.State{
		workflow.StateDraft,
		workflow.StateSubmitted,
		workflow.StateInProgress,
		workflow.StateApproved,
	}
	for _, from := range nonTerminal {
		got, err := workflow.Apply(from, workflow.ActionReject)
		require.NoError(t, err, "rechazar desde %q debe ser válido", from)
		assert.Equal(t, workflow.StateRejected, got)

		got, err = workflow.Apply(from, workflow.ActionCancel)
		require.NoError(t, err, "cancelar desde %q debe ser válido", from)
		assert.Equal(t, workflow.StateCancelled, got)
	}
}

func TestApply_EstadosTerminalesCongelados(t *testing.T) {
	terminal := []workflow.State{
		workflow.StateDone,
		workflow.StateRejected,
		workflow.StateCancelled,
	}
	actions := []workflow.Action{
		workflow.ActionSubmit,
		workflow.ActionStart,
		workflow.ActionApprove,
		workflow.ActionComplete,
		workflow.ActionReject,
		workflow.ActionCancel,
	}
	for _, from := range terminal {
		assert.True(t, workflow.IsTerminal(from), "%q debe ser terminal", from)
		for _, action := range actions {
			_, err := workflow.Apply(from, action)
			assert.Error(t, err, "ninguna acción debe aplicar sobre el estado terminal %q", from)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_EstadoDesconocidoFalla(t *testing.T) {
	_, err := workflow.Apply(workflow.State("pendiente"), workflow.ActionSubmit)
	assert.Error(t, err, "un estado fuera del ciclo de vida debe rechazarse")
}

func TestApply_AccionDesconocidaFalla(t *testing.T) {
	_, err := workflow.Apply(workflow.StateDraft, workflow.Action("archivar"))
	assert.Error(t, err, "una acción fuera de la tabla debe rechazarse")
}

func TestValid_ReconoceLosSieteEstados(t *testing.T) {
	for _, s := range []workflow.State{
		workflow.StateDraft, workflow.StateSubmitted, workflow.StateInProgress,
		workflow.StateApproved, workflow.StateDone, workflow.StateRejected,
		workflow.StateCancelled,
	} {
		assert.True(t, workflow.Valid(s), "%q debe ser un estado válido", s)
	}
	assert.False(t, workflow.Valid(workflow.State("")), "el estado vacío no es válido")
}
