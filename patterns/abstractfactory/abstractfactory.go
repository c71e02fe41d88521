package abstractfactory

import (
	"io"
	"strings"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Platform names a widget family.
type Platform string

const (
	Windows Platform = "Windows"
	Mac     Platform = "Mac"
)

// Button is a clickable widget.
type Button interface {
	Click(w io.Writer)
}

// Checkbox is a checkable widget.
type Checkbox interface {
	Check(w io.Writer)
}

// GUIFactory creates one consistent family of widgets.
type GUIFactory interface {
	CreateButton() Button
	CreateCheckbox() Checkbox
	Platform() Platform
}

// button and checkbox are unexported so only a factory can pick their platform.
type button struct{ platform Platform }

func (b button) Click(w io.Writer) { transcript.Line(w, "Button clicked in "+string(b.platform)) }

type checkbox struct{ platform Platform }

func (c checkbox) Check(w io.Writer) {
	transcript.Line(w, "Check box created in "+string(c.platform))
}

// WindowsFactory creates Windows widgets.
type WindowsFactory struct{}

// CreateButton, CreateCheckbox and Platform implement GUIFactory.
func (WindowsFactory) CreateButton() Button     { return button{platform: Windows} }
func (WindowsFactory) CreateCheckbox() Checkbox { return checkbox{platform: Windows} }
func (WindowsFactory) Platform() Platform       { return Windows }

// MacFactory creates Mac widgets.
type MacFactory struct{}

// CreateButton, CreateCheckbox and Platform implement GUIFactory.
func (MacFactory) CreateButton() Button     { return button{platform: Mac} }
func (MacFactory) CreateCheckbox() Checkbox { return checkbox{platform: Mac} }
func (MacFactory) Platform() Platform       { return Mac }

// FactoryFor returns the factory for a platform name (case-insensitive).
func FactoryFor(name string) (GUIFactory, bool) {
	switch strings.ToLower(name) {
	case "windows":
		return WindowsFactory{}, true
	case "mac":
		return MacFactory{}, true
	default:
		return nil, false
	}
}
