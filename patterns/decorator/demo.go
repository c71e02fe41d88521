package decorator

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo prices a plain pizza and two topped ones, then fills a solid and a patterned color.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	out.Printf("Cost of plain pizza = %d\n", Pizza1{}.Cost())
	out.Printf("Cost of pizza with topping1 = %d\n", NewTopping1(Pizza1{}).Cost())
	out.Printf("Cost of pizza with topping1 + topping2 = %d\n", NewTopping2(NewTopping1(Pizza1{})).Cost())

	out.Println("Style: Solid")
	Black{}.Fill(out)
	out.Println("Style: Pattern")
	NewPatternDecorator(Black{}).Fill(out)

	return out.Err()
}
