package adapter

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// RocketShip is what Pilot knows how to fly.
type RocketShip interface {
	TurnOn(w io.Writer)
	TurnOff(w io.Writer)
	BlastOff(w io.Writer)
	Fly(w io.Writer)
}

// NASAShip implements RocketShip directly.
type NASAShip struct{}

func (NASAShip) TurnOn(w io.Writer)   { transcript.Line(w, "NASA Ship is turning on.") }
func (NASAShip) TurnOff(w io.Writer)  { transcript.Line(w, "NASA Ship is turning off.") }
func (NASAShip) BlastOff(w io.Writer) { transcript.Line(w, "NASA Ship is blasting off.") }
func (NASAShip) Fly(w io.Writer)      { transcript.Line(w, "NASA Ship is flying away.") }

// SpaceXShip has its own, incompatible control surface.
type SpaceXShip interface {
	Ignition(w io.Writer)
	On(w io.Writer)
	Off(w io.Writer)
	Launch(w io.Writer)
	Fly(w io.Writer)
}

// SpaceXDragon implements SpaceXShip.
type SpaceXDragon struct{}

func (SpaceXDragon) Ignition(w io.Writer) { transcript.Line(w, "Turning Dragon's ignition.") }
func (SpaceXDragon) On(w io.Writer)       { transcript.Line(w, "Turning on the Dragon.") }
func (SpaceXDragon) Off(w io.Writer)      { transcript.Line(w, "Turning off the Dragon.") }
func (SpaceXDragon) Launch(w io.Writer)   { transcript.Line(w, "Launching the Dragon") }
func (SpaceXDragon) Fly(w io.Writer)      { transcript.Line(w, "The Dragon is flying away.") }

// SpaceXAdapter lets any SpaceXShip be piloted as a RocketShip.
type SpaceXAdapter struct {
	Ship SpaceXShip
}

var _ RocketShip = SpaceXAdapter{}

// TurnOn needs two SpaceX calls: ignition, then power.
func (a SpaceXAdapter) TurnOn(w io.Writer) {
	a.Ship.Ignition(w)
	a.Ship.On(w)
}

func (a SpaceXAdapter) TurnOff(w io.Writer)  { a.Ship.Off(w) }
func (a SpaceXAdapter) BlastOff(w io.Writer) { a.Ship.Launch(w) }
func (a SpaceXAdapter) Fly(w io.Writer)      { a.Ship.Fly(w) }

// Pilot runs a full flight.
func Pilot(w io.Writer, ship RocketShip) {
	ship.TurnOn(w)
	ship.BlastOff(w)
	ship.Fly(w)
	ship.TurnOff(w)
}
