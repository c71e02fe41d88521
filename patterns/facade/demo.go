package facade

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo completes one order through the facade.
func Demo(w io.Writer) error {
	out := transcript.New(w)
	Operation{}.CompleteOrder(out)
	return out.Err()
}
