package observer

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo restocks an out-of-stock phone with three registered observers, then
// publishes one event on a channel.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	iphone := NewStockSubject(out)
	iphone.Register(MobileObserver{Number: "123"})
	iphone.Register(EmailObserver{Address: "abc@gmail.com"})
	iphone.Register(EmailObserver{Address: "xyz@gmail.com"})
	iphone.SetStock(10)

	channel := NewChannel("funtime")
	for _, name := range []string{"sub1", "sub2", "sub3"} {
		channel.Subscribe(User{Name: name})
	}
	channel.Notify(out, "New video uploaded")

	return out.Err()
}
