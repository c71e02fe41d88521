package observer

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Observer receives stock notifications.
type Observer interface {
	Update(w io.Writer)
}

// MobileObserver notifies by text message.
type MobileObserver struct {
	Number string
}

// Update implements Observer.
func (o MobileObserver) Update(w io.Writer) { transcript.Line(w, "Message sent to "+o.Number) }

// EmailObserver notifies by email.
type EmailObserver struct {
	Address string
}

// Update implements Observer.
func (o EmailObserver) Update(w io.Writer) { transcript.Line(w, "Email sent to "+o.Address) }

// Subject is the observable side.
type Subject interface {
	Register(o Observer)
	NotifyAll()
	SetStock(n int)
}

// StockSubject tracks the number of items left for one product.
//
// Observers are notified in registration order. There is no unregister;
// registering the same observer twice notifies it twice.
type StockSubject struct {
	out       io.Writer
	observers []Observer
	stock     int
}

var _ Subject = (*StockSubject)(nil)

// NewStockSubject returns an out-of-stock subject that notifies through w.
func NewStockSubject(w io.Writer) *StockSubject {
	return &StockSubject{out: w}
}

// Register appends o to the notification list.
func (s *StockSubject) Register(o Observer) {
	s.observers = append(s.observers, o)
}

// NotifyAll calls Update on every registered observer.
func (s *StockSubject) NotifyAll() {
	for _, o := range s.observers {
		o.Update(s.out)
	}
}

// SetStock adds n items.
//
// Observers are notified only when the product was out of stock at the time
// of the call. Restocking a product that still has items never notifies.
func (s *StockSubject) SetStock(n int) {
	if s.stock == 0 {
		s.NotifyAll()
	}
	s.stock += n
}

// Stock returns the number of items left.
func (s *StockSubject) Stock() int { return s.stock }
