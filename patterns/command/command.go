package command

import (
	"io"

	"github.com/sghaida/gopatterns/internal/transcript"
)

// Command is an executable action.
type Command interface {
	Execute(w io.Writer)
}

// TV is the receiver.
type TV struct{}

func (TV) On(w io.Writer)  { transcript.Line(w, "TV is on, watch movies.") }
func (TV) Off(w io.Writer) { transcript.Line(w, "TV is off") }

// TVOnCommand turns the TV on.
type TVOnCommand struct{ TV TV }

// Execute implements Command.
func (c TVOnCommand) Execute(w io.Writer) { c.TV.On(w) }

// TVOffCommand turns the TV off.
type TVOffCommand struct{ TV TV }

// Execute implements Command.
func (c TVOffCommand) Execute(w io.Writer) { c.TV.Off(w) }

// RemoteControl maps button slots to commands.
type RemoteControl struct {
	commands map[int]Command
}

// NewRemoteControl returns a remote with every slot empty.
func NewRemoteControl() *RemoteControl {
	return &RemoteControl{commands: map[int]Command{}}
}

// SetCommand assigns cmd to slot, replacing any previous command.
func (r *RemoteControl) SetCommand(slot int, cmd Command) {
	r.commands[slot] = cmd
}

// PressButton executes the command in slot; an empty slot prints "do nothing.".
func (r *RemoteControl) PressButton(w io.Writer, slot int) {
	cmd, ok := r.commands[slot]
	if !ok {
		transcript.Line(w, "do nothing.")
		return
	}
	cmd.Execute(w)
}
