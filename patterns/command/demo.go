package command

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Demo presses an empty slot, then the on and off slots.
func Demo(w io.Writer) error {
	out := transcript.New(w)

	var tv TV
	remote := NewRemoteControl()
	remote.PressButton(out, 0)

	remote.SetCommand(1, TVOnCommand{TV: tv})
	remote.SetCommand(2, TVOffCommand{TV: tv})
	remote.PressButton(out, 1)
	remote.PressButton(out, 2)

	return out.Err()
}
