package monitoring

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordSubmission(t *testing.T) {
	collector := NewMetricsCollector()

	collector.RecordSubmission(true)
	collector.RecordSubmission(true)
	collector.RecordSubmission(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.submissions.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.submissions.WithLabelValues("failure")))
}

func TestRecordBatch(t *testing.T) {
	collector := NewMetricsCollector()

	collector.RecordBatch("completed", 5)
	collector.RecordBatch("failed", 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(collector.batches.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.batches.WithLabelValues("failed")))
	assert.Equal(t, 5.0, testutil.ToFloat64(collector.itemsDistributed))
}
