package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(DraftsSaved)
	DraftsSaved.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(DraftsSaved))

	failed := DraftOperationsFailed.WithLabelValues("save", "STORAGE_WRITE_FAILED")
	before = testutil.ToFloat64(failed)
	failed.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(failed))
}

func TestHTTPRequestDuration_Observes(t *testing.T) {
	HTTPRequestDuration.WithLabelValues("/api/search", "GET", "200").Observe(0.01)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}
