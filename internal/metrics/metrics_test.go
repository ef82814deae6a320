package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, IngestRowsTotal)
	assert.NotNil(t, IngestMalformedRowsTotal)
	assert.NotNil(t, SourceErrorsTotal)
	assert.NotNil(t, SearchDuration)
	assert.NotNil(t, DedupRemovedTotal)
	assert.NotNil(t, ShortlistSavesTotal)
}

func TestCounterIncrements(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(IngestRowsTotal.WithLabelValues("test_provider"))
	IngestRowsTotal.WithLabelValues("test_provider").Inc()
	after := testutil.ToFloat64(IngestRowsTotal.WithLabelValues("test_provider"))
	assert.InDelta(t, before+1, after, 0.001)
}

func TestHealthGauges(t *testing.T) {
	t.Parallel()

	HealthzUp.Set(1)
	assert.InDelta(t, 1, testutil.ToFloat64(HealthzUp), 0.001)
}
