package factory

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShapeFactory_Create verifies each discriminator maps to its shape.
func TestShapeFactory_Create(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind string
		want string
	}{
		{kind: "circle", want: "Drawing circle\n"},
		{kind: "triangle", want: "Drawing triangle\n"},
	}

	for _, tc := range cases {
		t.Run(tc.kind, func(t *testing.T) {
			t.Parallel()

			shape, ok := ShapeFactory{}.Create(tc.kind)
			require.True(t, ok)
			require.NotNil(t, shape)

			var buf bytes.Buffer
			shape.Draw(&buf)
			shape.Draw(&buf)
			assert.Equal(t, tc.want+tc.want, buf.String(), "drawing twice prints the same line twice")
		})
	}
}

// TestShapeFactory_CreateUnknown verifies unknown discriminators yield absence, not a panic.
func TestShapeFactory_CreateUnknown(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"unknown", "", "Circle", " circle"} {
		assert.NotPanics(t, func() {
			shape, ok := ShapeFactory{}.Create(kind)
			assert.False(t, ok, kind)
			assert.Nil(t, shape, kind)
		})
	}
}

// TestNewAnimal verifies the enum-keyed factory.
func TestNewAnimal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	for _, kind := range []AnimalKind{Dog, Cat} {
		a, ok := NewAnimal(kind)
		require.True(t, ok, kind.String())
		a.Speak(&buf)
	}
	assert.Equal(t, "Dog says: Woof!\nCat says: Meow!\n", buf.String())

	a, ok := NewAnimal(AnimalKind(0))
	assert.False(t, ok)
	assert.Nil(t, a)
	assert.Equal(t, "unknown", AnimalKind(42).String())
}

// TestDemo verifies the full transcript.
func TestDemo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))

	assert.Equal(t, "Drawing circle\n"+
		"Drawing triangle\n"+
		"No shape for \"hexagon\"\n"+
		"Dog says: Woof!\n"+
		"Cat says: Meow!\n", buf.String())
}
