package iterator

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterator_Walk verifies Next, Current and HasNext agree.
func TestIterator_Walk(t *testing.T) {
	t.Parallel()

	var c Container[string]
	c.Add("a")
	c.Add("b")

	it := c.Iter()
	cur, ok := it.Current()
	require.True(t, ok)
	assert.Equal(t, "a", cur)

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.False(t, it.HasNext())
	v, ok = it.Next()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

// TestIterator_Reset verifies the cursor restarts from the first item.
func TestIterator_Reset(t *testing.T) {
	t.Parallel()

	var c Container[int]
	c.Add(7)

	it := c.Iter()
	_, _ = it.Next()
	it.Reset()

	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

// TestIterator_Empty verifies an empty container yields nothing.
func TestIterator_Empty(t *testing.T) {
	t.Parallel()

	var c Container[int]
	it := c.Iter()
	assert.False(t, it.HasNext())
	_, ok := it.Current()
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(c.All()))
}

// TestContainer_AllStopsEarly verifies the sequence honors an early break.
func TestContainer_AllStopsEarly(t *testing.T) {
	t.Parallel()

	var c Container[int]
	for i := 1; i <= 5; i++ {
		c.Add(i)
	}

	var got []int
	for v := range c.All() {
		if v > 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 5, c.Len())
}

// TestDemo verifies the transcript.
func TestDemo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t, "item: 1\nitem: 1\nitem: 2\nitem: 3\nexhausted\nsum: 6\n", buf.String())
}
