package factory

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo draws the shapes the factory knows, reports an unknown one, then makes two animals speak.
func Demo(w io.Writer) error {
	out := transcript.New(w)
	var shapes ShapeFactory

	for _, kind := range []string{KindCircle, KindTriangle, "hexagon"} {
		shape, ok := shapes.Create(kind)
		if !ok {
			out.Printf("No shape for %q\n", kind)
			continue
		}
		shape.Draw(out)
	}

	for _, kind := range []AnimalKind{Dog, Cat} {
		if animal, ok := NewAnimal(kind); ok {
			animal.Speak(out)
		}
	}

	return out.Err()
}
