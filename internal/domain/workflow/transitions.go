// Package workflow define la máquina de estados de las solicitudes de activos
// como un conjunto cerrado: cada acción valida el estado actual antes de
// aplicarse, en lugar de escrituras incondicionales de campo.
package workflow

import "fmt"

// State estado del ciclo de vida de una solicitud.
type State string

// Estados válidos. done, rejected y cancelled son terminales.
const (
	StateDraft      State = "draft"
	StateSubmitted  State = "submitted"
	StateInProgress State = "in_progress"
	StateApproved   State = "approved"
	StateDone       State = "done"
	StateRejected   State = "rejected"
	StateCancelled  State = "cancelled"
)

// Action acción explícita sobre una solicitud.
type Action string

const (
	ActionSubmit   Action = "submit"
	ActionStart    Action = "start_progress"
	ActionApprove  Action = "approve"
	ActionComplete Action = "complete"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
)

// Camino principal: draft → submitted → in_progress → approved → done.
// reject y cancel salen de cualquier estado no terminal.
var forward = map[Action]struct {
	from State
	to   State
}{
	ActionSubmit:   {StateDraft, StateSubmitted},
	ActionStart:    {StateSubmitted, StateInProgress},
	ActionApprove:  {StateInProgress, StateApproved},
	ActionComplete: {StateApproved, StateDone},
}

// IsTerminal indica si el estado no admite más transiciones.
func IsTerminal(s State) bool {
	return s == StateDone || s == StateRejected || s == StateCancelled
}

// Valid indica si s es uno de los siete estados del ciclo de vida.
func Valid(s State) bool {
	switch s {
	case StateDraft, StateSubmitted, StateInProgress, StateApproved,
		StateDone, StateRejected, StateCancelled:
		return true
	}
	return false
}

// Apply valida la transición y devuelve el estado resultante.
// Una acción sobre un estado que no la admite devuelve error; el caller
// lo traduce a un conflicto (HTTP 409), nunca a una escritura silenciosa.
func Apply(current State, action Action) (State, error) {
	if !Valid(current) {
		return "", fmt.Errorf("estado desconocido %q", current)
	}
	switch action {
	case ActionReject:
		if IsTerminal(current) {
			return "", fmt.Errorf("no se puede rechazar una solicitud en estado %q", current)
		}
		return StateRejected, nil
	case ActionCancel:
		if IsTerminal(current) {
			return "", fmt.Errorf("no se puede cancelar una solicitud en estado %q", current)
		}
		return StateCancelled, nil
	}
	t, ok := forward[action]
	if !ok {
		return "", fmt.Errorf("acción desconocida %q", action)
	}
	if current != t.from {
		return "", fmt.Errorf("la acción %q requiere estado %q, la solicitud está en %q", action, t.from, current)
	}
	return t.to, nil
}
