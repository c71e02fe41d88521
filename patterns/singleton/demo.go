package singleton

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo fetches the instance twice and shows both handles are the same object.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	a := Instance()
	b := Instance()
	out.Printf("same instance: %t\n", a == b)
	out.Printf("instances created: %d\n", Created())

	return out.Err()
}
