package command

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCommand counts executions.
type recordingCommand struct{ runs *int }

func (c recordingCommand) Execute(io.Writer) { *c.runs++ }

// TestRemoteControl_SetCommandReplaces verifies the last assignment to a slot wins.
func TestRemoteControl_SetCommandReplaces(t *testing.T) {
	t.Parallel()

	var runs int
	var buf bytes.Buffer
	r := NewRemoteControl()
	r.SetCommand(1, TVOnCommand{})
	r.SetCommand(1, recordingCommand{runs: &runs})

	r.PressButton(&buf, 1)
	r.PressButton(&buf, 1)

	assert.Equal(t, 2, runs)
	assert.Empty(t, buf.String())
}

// TestRemoteControl_EmptySlot verifies an unassigned slot is a no-op message.
func TestRemoteControl_EmptySlot(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewRemoteControl().PressButton(&buf, 7)
	assert.Equal(t, "do nothing.\n", buf.String())
}

// TestDemo verifies the transcript.
func TestDemo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Demo(&buf))
	assert.Equal(t, "do nothing.\nTV is on, watch movies.\nTV is off\n", buf.String())
}
