package abstractfactory

import "io"

// Application is the client of a GUIFactory.
//
// It creates its widgets once, from the single factory it was given, and
// cannot switch families afterwards.
type Application struct {
	factory  GUIFactory
	out      io.Writer
	button   Button
	checkbox Checkbox
}

// NewApplication returns an application whose UI will come from f and print to w.
func NewApplication(f GUIFactory, w io.Writer) *Application {
	return &Application{factory: f, out: w}
}

// CreateUI creates the button and checkbox. Calls after the first are no-ops.
func (a *Application) CreateUI() {
	if a.button != nil {
		return
	}
	a.button = a.factory.CreateButton()
	a.checkbox = a.factory.CreateCheckbox()
}

// ClickButton clicks the application's button.
func (a *Application) ClickButton() {
	a.CreateUI()
	a.button.Click(a.out)
}

// CreateCheckbox checks the application's checkbox.
func (a *Application) CreateCheckbox() {
	a.CreateUI()
	a.checkbox.Check(a.out)
}

// Platform reports the widget family in use.
func (a *Application) Platform() Platform { return a.factory.Platform() }
