package singleton

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLazy_CountsOnlyRealConstruction verifies the counter is 0 before first use and 1 after.
func TestLazy_CountsOnlyRealConstruction(t *testing.T) {
	t.Parallel()

	var l lazy
	assert.Equal(t, int32(0), l.created.Load())

	a := l.get()
	b := l.get()
	assert.Same(t, a, b)
	assert.Equal(t, int32(1), l.created.Load())
}

// TestLazy_ConcurrentCallersShareOneValue verifies lazy creation happens exactly once.
func TestLazy_ConcurrentCallersShareOneValue(t *testing.T) {
	t.Parallel()

	const n = 32
	var l lazy
	got := make([]*Config, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = l.get()
		}(i)
	}
	wg.Wait()

	for _, c := range got {
		assert.Same(t, got[0], c)
	}
	assert.Equal(t, int32(1), l.created.Load())
}

// TestInstance_Shared verifies the package-level accessors agree.
func TestInstance_Shared(t *testing.T) {
	t.Parallel()

	assert.Same(t, Instance(), Instance())
	assert.Equal(t, 1, Created())
}

// TestDemo verifies the full transcript.
func TestDemo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t, "same instance: true\ninstances created: 1\n", buf.String())
}
