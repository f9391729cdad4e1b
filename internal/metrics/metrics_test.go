package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAssembly(t *testing.T) {
	counter := AssembliesTotal.WithLabelValues("metrics-test", "cli")
	before := testutil.ToFloat64(counter)

	ObserveAssembly("metrics-test", "cli", time.Now(), "assembled prompt")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
