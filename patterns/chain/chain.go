package chain

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Customer is the state the chain works on.
type Customer struct {
	OrderPlaced bool
	PaymentDone bool
	Delivered   bool
}

// Department is one link in the chain.
type Department interface {
	Handle(w io.Writer, c *Customer)
	Next() Department
}

// link holds the successor; departments embed it.
type link struct {
	next Department
}

func (l link) Next() Department { return l.next }

// Order places the order.
type Order struct{ link }

// NewOrder returns an Order department forwarding to next (nil ends the chain).
func NewOrder(next Department) *Order { return &Order{link{next: next}} }

// Handle implements Department.
func (*Order) Handle(w io.Writer, c *Customer) {
	if c.OrderPlaced {
		transcript.Line(w, "Order is already placed")
		return
	}
	c.OrderPlaced = true
	transcript.Line(w, "Order placed")
}

// Payment takes the payment.
type Payment struct{ link }

// NewPayment returns a Payment department forwarding to next.
func NewPayment(next Department) *Payment { return &Payment{link{next: next}} }

// Handle implements Department.
func (*Payment) Handle(w io.Writer, c *Customer) {
	if c.PaymentDone {
		transcript.Line(w, "Payment is already done")
		return
	}
	c.PaymentDone = true
	transcript.Line(w, "Payment done")
}

// Delivery ships the order.
type Delivery struct{ link }

// NewDelivery returns a Delivery department forwarding to next.
func NewDelivery(next Department) *Delivery { return &Delivery{link{next: next}} }

// Handle implements Department.
func (*Delivery) Handle(w io.Writer, c *Customer) {
	if c.Delivered {
		transcript.Line(w, "Delivery is already done")
		return
	}
	c.Delivered = true
	transcript.Line(w, "Delivered")
}

// Execute runs c through the chain starting at head.
func Execute(w io.Writer, head Department, c *Customer) {
	for d := head; d != nil; d = d.Next() {
		d.Handle(w, c)
	}
}
