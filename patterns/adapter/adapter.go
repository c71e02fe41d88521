package adapter

// Target is the interface callers know how to use.
type Target interface {
	Request() string
}

// Compatible already satisfies Target.
type Compatible struct{}

func (Compatible) specificRequest() string { return "I'm compatible object" }

// Request implements Target.
func (c Compatible) Request() string { return c.specificRequest() }

// Incompatible offers the right behavior under the wrong method name.
type Incompatible struct{}

// SpecificRequest is Incompatible's own API.
func (Incompatible) SpecificRequest() string { return "I'm incompatible object" }

// Adapter makes an Incompatible usable as a Target.
type Adapter struct {
	Adaptee Incompatible
}

// Request implements Target.
func (a Adapter) Request() string { return a.Adaptee.SpecificRequest() }

// Call is a client that only understands Target.
func Call(t Target) string { return t.Request() }
