package factory

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Shape discriminators understood by ShapeFactory.
const (
	KindCircle   = "circle"
	KindTriangle = "triangle"
)

// Shape is the product capability.
type Shape interface {
	Draw(w io.Writer)
}

// Circle is a Shape.
type Circle struct{}

// Draw implements Shape.
func (Circle) Draw(w io.Writer) { transcript.Line(w, "Drawing circle") }

// Triangle is a Shape.
type Triangle struct{}

// Draw implements Shape.
func (Triangle) Draw(w io.Writer) { transcript.Line(w, "Drawing triangle") }

// ShapeFactory creates shapes by name.
type ShapeFactory struct{}

// Create returns the shape for kind.
//
// ok is false (and the Shape nil) when kind is not a known discriminator.
// Callers must check ok before calling Draw.
func (ShapeFactory) Create(kind string) (shape Shape, ok bool) {
	switch kind {
	case KindCircle:
		return Circle{}, true
	case KindTriangle:
		return Triangle{}, true
	default:
		return nil, false
	}
}
