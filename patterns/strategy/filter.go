package strategy

// FilterStrategy decides which values survive a Values.Filter call.
type FilterStrategy interface {
	Keep(v int) bool
}

// RemoveNegative keeps zero and positive values.
type RemoveNegative struct{}

// Keep implements FilterStrategy.
func (RemoveNegative) Keep(v int) bool { return v >= 0 }

// RemoveOdd keeps even values.
type RemoveOdd struct{}

// Keep implements FilterStrategy.
func (RemoveOdd) Keep(v int) bool { return v%2 == 0 }

// Values is a list filtered in place by a FilterStrategy.
type Values []int

// Filter retains the values s keeps, preserving order.
func (vs *Values) Filter(s FilterStrategy) {
	out := (*vs)[:0]
	for _, v := range *vs {
		if s.Keep(v) {
			out = append(out, v)
		}
	}
	*vs = out
}
