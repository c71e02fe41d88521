package decorator

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Color fills a shape.
type Color interface {
	Fill(w io.Writer)
}

// Black is a solid fill.
type Black struct{}

// Fill implements Color.
func (Black) Fill(w io.Writer) { transcript.Line(w, "Black color") }

// PatternDecorator fills with the inner color, then draws a pattern on top.
type PatternDecorator struct {
	colored Color
}

// NewPatternDecorator wraps c. c must not be nil.
func NewPatternDecorator(c Color) *PatternDecorator { return &PatternDecorator{colored: c} }

// Fill implements Color: the inner fill first, then the pattern.
func (p *PatternDecorator) Fill(w io.Writer) {
	p.colored.Fill(w)
	transcript.Line(w, "Pattern")
}
