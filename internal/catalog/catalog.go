package catalog

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

var (
	// ErrEmptyName is returned when a demo is registered without a name.
	ErrEmptyName = errors.New("catalog: empty demo name")

	// ErrNilRun is returned when a demo is registered without a driver.
	ErrNilRun = errors.New("catalog: nil demo driver")

	// ErrDemoPanic is returned by Run when a demo driver panics.
	ErrDemoPanic = errors.New("catalog: panic during demo run")
)

// Category groups demos the way the classic pattern catalogue does.
type Category string

const (
	Creational Category = "creational"
	Structural Category = "structural"
	Behavioral Category = "behavioral"
)

// RunFunc drives one demo, writing its transcript to w.
type RunFunc func(w io.Writer) error

// Demo describes one runnable demo.
type Demo struct {
	Name     string
	Category Category
	Summary  string
	Run      RunFunc
}

// DuplicateDemoError is returned when a name is registered twice.
type DuplicateDemoError struct{ Name string }

// Error implements the error interface.
func (e DuplicateDemoError) Error() string {
	// Example: catalog: duplicate demo "strategy"
	return "catalog: duplicate demo " + strconv.Quote(e.Name)
}

// UnknownDemoError is returned when a name is not registered.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: catalog: unknown demo "visitor"
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// Registry is an ordered, name-indexed set of demos.
type Registry struct {
	demos []Demo
	index map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register adds d.
//
// It fails with ErrEmptyName, ErrNilRun or DuplicateDemoError and leaves the
// registry unchanged on failure.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Run == nil {
		return ErrNilRun
	}
	if _, exists := r.index[d.Name]; exists {
		return DuplicateDemoError{Name: d.Name}
	}
	r.index[d.Name] = len(r.demos)
	r.demos = append(r.demos, d)
	return nil
}

// MustRegister is Register that panics on error and returns the registry for chaining.
func (r *Registry) MustRegister(d Demo) *Registry {
	if err := r.Register(d); err != nil {
		panic(err)
	}
	return r
}

// Get returns the demo registered under name (no error).
func (r *Registry) Get(name string) (Demo, bool) {
	i, ok := r.index[name]
	if !ok {
		return Demo{}, false
	}
	return r.demos[i], true
}

// Resolve returns the demo registered under name or an UnknownDemoError.
func (r *Registry) Resolve(name string) (Demo, error) {
	d, ok := r.Get(name)
	if !ok {
		return Demo{}, UnknownDemoError{Name: name}
	}
	return d, nil
}

// All returns every demo in registration order.
func (r *Registry) All() []Demo {
	out := make([]Demo, len(r.demos))
	copy(out, r.demos)
	return out
}

// Names returns every demo name in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.demos))
	for _, d := range r.demos {
		out = append(out, d.Name)
	}
	return out
}

// Len returns the number of registered demos.
func (r *Registry) Len() int { return len(r.demos) }

// Run resolves name and drives the demo into w.
//
// A panicking driver is converted into an error wrapping ErrDemoPanic.
func (r *Registry) Run(name string, w io.Writer) (err error) {
	d, err := r.Resolve(name)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, name, rec)
		}
	}()

	if err := d.Run(w); err != nil {
		return fmt.Errorf("catalog: run %s: %w", name, err)
	}
	return nil
}
