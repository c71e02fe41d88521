package abstractfactory

import (
	"fmt"
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo builds the same application on Windows and on Mac.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	for _, name := range []string{"windows", "mac"} {
		f, ok := FactoryFor(name)
		if !ok {
			return fmt.Errorf("abstractfactory: no factory for %q", name)
		}
		app := NewApplication(f, out)
		app.CreateUI()
		app.ClickButton()
		app.CreateCheckbox()
	}

	return out.Err()
}
