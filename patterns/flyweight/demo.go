package flyweight

import (
	"fmt"
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo stocks ten books of two types and shows only two types were created.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	factory := NewBookFactory()
	var store Store
	for i := 0; i < 5; i++ {
		store.AddBook(factory, fmt.Sprintf("book%d", i+1), i+10, "Action", "distributor1")
		store.AddBook(factory, fmt.Sprintf("book%d", i+2), i+20, "Adventure", "distributor2")
	}

	store.Display(out)
	out.Printf("book types created: %d\n", factory.Len())

	return out.Err()
}
