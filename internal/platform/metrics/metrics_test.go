package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.PageViews.WithLabelValues("index").Inc()
	m.EntriesAdded.WithLabelValues("quote").Add(2)
	m.PictureFetches.WithLabelValues(OutcomeFailure).Inc()
	m.RegenerationRuns.WithLabelValues(OutcomeSuccess).Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageViews.WithLabelValues("index")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntriesAdded.WithLabelValues("quote")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PictureFetches.WithLabelValues(OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RegenerationRuns.WithLabelValues(OutcomeSuccess)))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
