package schedule

import "fmt"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending            Status = "pendiente"
	StatusInProcess          Status = "en_proceso"
	StatusFinalized          Status = "finalizada"
	StatusCancelled          Status = "cancelada"
	StatusCancelledByNovelty Status = "cancelada_por_novedad"
)

// transitions is the full legal-transition table. Finalizada and cancelada
// are terminal; cancelada_por_novedad can only go back to pendiente, and
// only the novelty annulment path takes it there.
var transitions = map[Status][]Status{
	StatusPending:            {StatusInProcess, StatusCancelled, StatusCancelledByNovelty},
	StatusInProcess:          {StatusFinalized, StatusCancelled, StatusCancelledByNovelty},
	StatusFinalized:          {},
	StatusCancelled:          {},
	StatusCancelledByNovelty: {StatusPending},
}

// IsActive reports whether the appointment still occupies its slot for
// conflict-checking purposes.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusInProcess
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.To)
}

// CanTransition checks the table; any pair not listed fails.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}
