package facade

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// PlaceOrder is the ordering subsystem.
type PlaceOrder struct{}

func (PlaceOrder) Place(w io.Writer) { transcript.Line(w, "Order placed") }

// Payment is the billing subsystem.
type Payment struct{}

func (Payment) Pay(w io.Writer) { transcript.Line(w, "Payment received") }

// Delivery is the shipping subsystem.
type Delivery struct{}

func (Delivery) Deliver(w io.Writer) { transcript.Line(w, "Order Delivered") }

// Operation is the facade.
type Operation struct {
	order    PlaceOrder
	payment  Payment
	delivery Delivery
}

// CompleteOrder runs the subsystems in order.
func (o Operation) CompleteOrder(w io.Writer) {
	o.order.Place(w)
	o.payment.Pay(w)
	o.delivery.Deliver(w)
}
