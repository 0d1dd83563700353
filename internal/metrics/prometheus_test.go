package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusObserver(t *testing.T) {
	obs := NewPrometheusObserver()

	before := testutil.ToFloat64(mutations.WithLabelValues("delete_feature", OutcomeError))
	obs.RecordMutation("delete_feature", OutcomeError)
	assert.Equal(t, before+1, testutil.ToFloat64(mutations.WithLabelValues("delete_feature", OutcomeError)))

	before = testutil.ToFloat64(lookupDegraded.WithLabelValues("teams"))
	obs.RecordLookupDegraded("teams")
	assert.Equal(t, before+1, testutil.ToFloat64(lookupDegraded.WithLabelValues("teams")))

	// Just call to ensure no panic
	obs.ObserveQuery("list_features", 0.01)
}

func TestNop(t *testing.T) {
	obs := Nop()
	obs.ObserveQuery("x", 1)
	obs.RecordMutation("x", OutcomeOK)
	obs.RecordLookupDegraded("x")
}
