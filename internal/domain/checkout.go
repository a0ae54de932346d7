package domain

// AttemptState tracks how far a single checkout attempt has progressed.
// States advance strictly forward; failure exits carry the last state reached.
type AttemptState string

const (
	AttemptIdle             AttemptState = "idle"
	AttemptOrderCreated     AttemptState = "order_created"
	AttemptPaymentInFlight  AttemptState = "payment_in_flight"
	AttemptPaymentConfirmed AttemptState = "payment_confirmed"
	AttemptFinalized        AttemptState = "finalized"
)

// Terminal failure classifications for a checkout attempt.
const (
	AttemptOrderCreationFailed AttemptState = "order_creation_failed"
	AttemptPaymentFailed       AttemptState = "payment_failed"
	AttemptFinalizationFailed  AttemptState = "finalization_failed"
)

// IsTerminal reports whether the attempt reached an end state, successful
// or not. A new attempt may only start once the previous one is terminal.
func (s AttemptState) IsTerminal() bool {
	switch s {
	case AttemptFinalized, AttemptOrderCreationFailed, AttemptPaymentFailed, AttemptFinalizationFailed:
		return true
	}
	return false
}
