package adapter

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo calls a compatible and an adapted object, then pilots a native and an adapted ship.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	out.Println(Call(Compatible{}))
	out.Println(Call(Adapter{Adaptee: Incompatible{}}))

	out.Println("Piloting the Saturn 5.")
	Pilot(out, NASAShip{})

	out.Println("Piloting the Dragon Adapter.")
	Pilot(out, SpaceXAdapter{Ship: SpaceXDragon{}})

	return out.Err()
}
