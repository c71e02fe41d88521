package observer

import (
	"fmt"
	"io"
)

// Subscriber receives channel events.
type Subscriber interface {
	Notify(w io.Writer, event string)
}

// User is a named channel subscriber.
type User struct {
	Name string
}

// Notify implements Subscriber.
func (u User) Notify(w io.Writer, event string) {
	_, _ = fmt.Fprintf(w, "User %s received notification: %s\n", u.Name, event)
}

// Channel is a publish/subscribe subject: every event goes to every subscriber.
type Channel struct {
	Name        string
	subscribers []Subscriber
}

// NewChannel returns a channel without subscribers.
func NewChannel(name string) *Channel { return &Channel{Name: name} }

// Subscribe appends sub.
func (c *Channel) Subscribe(sub Subscriber) {
	c.subscribers = append(c.subscribers, sub)
}

// Notify publishes event to all subscribers in subscription order.
func (c *Channel) Notify(w io.Writer, event string) {
	for _, sub := range c.subscribers {
		sub.Notify(w, event)
	}
}
