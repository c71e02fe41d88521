package chain

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo runs one customer through order, payment and delivery twice.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	var customer Customer
	head := NewOrder(NewPayment(NewDelivery(nil)))

	Execute(out, head, &customer)
	out.Println("The Order has been already handled:")
	Execute(out, head, &customer)

	return out.Err()
}
