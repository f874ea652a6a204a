package models

import "strings"

// WorkflowState is a step of the confirm-then-mutate workflow.
type WorkflowState string

const (
	StateIdle         WorkflowState = "IDLE"
	StateMenuOpen     WorkflowState = "MENU_OPEN"
	StateConfirmOpen  WorkflowState = "CONFIRM_OPEN"
	StateCancelled    WorkflowState = "CANCELLED"
	StateNetworkCheck WorkflowState = "NETWORK_CHECK"
	StateInFlight     WorkflowState = "IN_FLIGHT"
	StateSuccess      WorkflowState = "SUCCESS"
	StatePartialError WorkflowState = "PARTIAL_ERROR"
	StateFatalError   WorkflowState = "FATAL_ERROR"
)

// WorkflowResult records what a single menu interaction did.
type WorkflowResult struct {
	Selected  MenuTag             `json:"selected,omitempty"`
	Action    ActionID            `json:"action,omitempty"`
	States    []WorkflowState     `json:"states"`
	Confirmed bool                `json:"confirmed"`
	Offline   bool                `json:"offline,omitempty"`
	Outcome   MutationOutcome     `json:"outcome,omitempty"`
	Rejected  map[string][]string `json:"rejected,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// Enter appends a state to the visited path.
func (r *WorkflowResult) Enter(state WorkflowState) {
	r.States = append(r.States, state)
}

// Final returns the last non-idle state visited.
func (r *WorkflowResult) Final() WorkflowState {
	for i := len(r.States) - 1; i >= 0; i-- {
		if r.States[i] != StateIdle {
			return r.States[i]
		}
	}
	return StateIdle
}

// Succeeded returns true if the remote mutation completed without errors.
func (r *WorkflowResult) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// Path renders the visited states as "A → B → C".
func (r *WorkflowResult) Path() string {
	parts := make([]string, len(r.States))
	for i, s := range r.States {
		parts[i] = string(s)
	}
	return strings.Join(parts, " → ")
}
