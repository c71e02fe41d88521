package prototype

// Prototype is implemented by types that can produce an independent copy of themselves.
type Prototype[T any] interface {
	Clone() T
}

// Human is a cloneable value with a reference field.
type Human struct {
	Name    string
	Age     int
	Hobbies []string
}

var _ Prototype[*Human] = (*Human)(nil)

// Clone returns a deep copy; mutating the copy never affects h.
func (h *Human) Clone() *Human {
	cp := *h
	if h.Hobbies != nil {
		cp.Hobbies = append([]string(nil), h.Hobbies...)
	}
	return &cp
}

// CloneAll clones every element of src.
func CloneAll[T Prototype[T]](src []T) []T {
	out := make([]T, 0, len(src))
	for _, p := range src {
		out = append(out, p.Clone())
	}
	return out
}
