package factory

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// AnimalKind is a closed set of animal discriminators.
type AnimalKind int

const (
	Dog AnimalKind = iota + 1
	Cat
)

// String implements fmt.Stringer.
func (k AnimalKind) String() string {
	switch k {
	case Dog:
		return "dog"
	case Cat:
		return "cat"
	default:
		return "unknown"
	}
}

// Animal is the product capability.
type Animal interface {
	Speak(w io.Writer)
}

type dog struct{}

func (dog) Speak(w io.Writer) { transcript.Line(w, "Dog says: Woof!") }

type cat struct{}

func (cat) Speak(w io.Writer) { transcript.Line(w, "Cat says: Meow!") }

// NewAnimal returns the animal for kind, or (nil, false) for a value outside the enum.
func NewAnimal(kind AnimalKind) (Animal, bool) {
	switch kind {
	case Dog:
		return dog{}, true
	case Cat:
		return cat{}, true
	default:
		return nil, false
	}
}
