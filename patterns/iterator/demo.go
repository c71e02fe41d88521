package iterator

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo walks a three-item container with a cursor, resets it, and walks it again.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	var c Container[int]
	c.Add(1)
	c.Add(2)
	c.Add(3)

	it := c.Iter()
	if v, ok := it.Next(); ok {
		out.Printf("item: %d\n", v)
	}
	it.Reset()
	for it.HasNext() {
		v, _ := it.Next()
		out.Printf("item: %d\n", v)
	}
	if _, ok := it.Next(); !ok {
		out.Println("exhausted")
	}

	sum := 0
	for v := range c.All() {
		sum += v
	}
	out.Printf("sum: %d\n", sum)

	return out.Err()
}
