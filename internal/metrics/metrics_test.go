package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.ObserveLookup(OpContains, true)
	m.ObserveLookup(OpContains, false)
	m.ObserveLookup(OpContains, false)
	m.ObserveLookup(OpPrefix, true)
	m.ObserveAdd(3)
	m.SetWords(42)
	m.ObserveRequest("/v1/contains", 2*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues(OpContains, "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.lookups.WithLabelValues(OpContains, "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lookups.WithLabelValues(OpPrefix, "hit")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.lookups.WithLabelValues(OpAdd, "ok")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.words))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requests))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SetWords(7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "wordtrie_words 7")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveLookup(OpContains, true)
		m.ObserveAdd(1)
		m.SetWords(1)
		m.ObserveRequest("/", time.Second)
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
