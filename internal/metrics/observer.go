package metrics

// StoreObserver receives record store events from the services.
type StoreObserver interface {
	ObserveQuery(op string, seconds float64)
	RecordMutation(op, outcome string)
	RecordLookupDegraded(lookup string)
}

// Mutation outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, float64) {}
func (nopObserver) RecordMutation(string, string) {}
func (nopObserver) RecordLookupDegraded(string) {}

// Nop discards every event.
func Nop() StoreObserver { return nopObserver{} }
