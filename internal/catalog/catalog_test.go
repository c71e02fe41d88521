package catalog

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okDemo(name string) Demo {
	return Demo{Name: name, Category: Behavioral, Run: func(w io.Writer) error {
		_, err := io.WriteString(w, name+"\n")
		return err
	}}
}

//
// -----------------------------------------------------------------------------
// NewRegistry / Register
// -----------------------------------------------------------------------------

// TestNewRegistry_Empty verifies a new registry holds nothing.
func TestNewRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	require.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Names())
	assert.Empty(t, r.All())
}

// TestRegister_PreservesOrder verifies All and Names follow registration order.
func TestRegister_PreservesOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry().MustRegister(okDemo("b")).MustRegister(okDemo("a"))

	assert.Equal(t, []string{"b", "a"}, r.Names())
	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Name)
}

// TestRegister_Errors verifies invalid demos are rejected without mutating the registry.
func TestRegister_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		demo   Demo
		wantIs error
		wantAs bool
	}{
		{name: "empty name", demo: Demo{Run: okDemo("x").Run}, wantIs: ErrEmptyName},
		{name: "nil run", demo: Demo{Name: "x"}, wantIs: ErrNilRun},
		{name: "duplicate", demo: okDemo("taken"), wantAs: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := NewRegistry().MustRegister(okDemo("taken"))
			err := r.Register(tc.demo)
			require.Error(t, err)

			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
			if tc.wantAs {
				var dup DuplicateDemoError
				require.True(t, errors.As(err, &dup))
				assert.Equal(t, "taken", dup.Name)
				assert.Equal(t, `catalog: duplicate demo "taken"`, err.Error())
			}
			assert.Equal(t, 1, r.Len())
		})
	}
}

// TestMustRegister_Panics verifies MustRegister panics with the Register error.
func TestMustRegister_Panics(t *testing.T) {
	t.Parallel()

	r := NewRegistry().MustRegister(okDemo("a"))
	require.PanicsWithError(t, `catalog: duplicate demo "a"`, func() {
		r.MustRegister(okDemo("a"))
	})
}

//
// -----------------------------------------------------------------------------
// Get / Resolve
// -----------------------------------------------------------------------------

// TestGet verifies present and missing lookups.
func TestGet(t *testing.T) {
	t.Parallel()

	r := NewRegistry().MustRegister(okDemo("a"))

	d, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", d.Name)

	d, ok = r.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", d.Name)
}

// TestResolve_Unknown verifies the typed error for missing names.
func TestResolve_Unknown(t *testing.T) {
	t.Parallel()

	_, err := NewRegistry().Resolve("visitor")

	var unknown UnknownDemoError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "visitor", unknown.Name)
	assert.Equal(t, `catalog: unknown demo "visitor"`, err.Error())
}

//
// -----------------------------------------------------------------------------
// Run
// -----------------------------------------------------------------------------

// TestRun_WritesTranscript verifies Run drives the demo into the writer.
func TestRun_WritesTranscript(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, NewRegistry().MustRegister(okDemo("a")).Run("a", &buf))
	assert.Equal(t, "a\n", buf.String())
}

// TestRun_Unknown verifies Run surfaces UnknownDemoError unwrapped.
func TestRun_Unknown(t *testing.T) {
	t.Parallel()

	err := NewRegistry().Run("nope", io.Discard)
	assert.Equal(t, UnknownDemoError{Name: "nope"}, err)
}

// TestRun_WrapsDriverError verifies driver errors keep their identity.
func TestRun_WrapsDriverError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	r := NewRegistry().MustRegister(Demo{Name: "bad", Run: func(io.Writer) error { return boom }})

	err := r.Run("bad", io.Discard)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "catalog: run bad")
}

// TestRun_RecoversFromPanic verifies panicking drivers become ErrDemoPanic.
func TestRun_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	r := NewRegistry().MustRegister(Demo{Name: "panics", Run: func(io.Writer) error { panic("kaboom") }})

	err := r.Run("panics", io.Discard)
	require.ErrorIs(t, err, ErrDemoPanic)
	assert.Contains(t, err.Error(), "kaboom")
}
