package tuitest

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFrames(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mPage 1 of 2\x1b[0m   \r\nbody\r\n\x1b[2J\x1b[HPage 2 of 2\r\n\x1b]11;?\x07tail  \r\n\r\n")

	frames := splitFrames(raw)
	require.Len(t, frames, 2)
	assert.Equal(t, "Page 1 of 2\nbody", frames[0].Plain)
	assert.Equal(t, []string{"Page 2 of 2", "tail"}, frames[1].Lines())
	assert.Equal(t, 1, frames[1].Index)
}

func TestSplitFramesWithoutClear(t *testing.T) {
	frames := splitFrames([]byte("plain output\r\n"))
	require.Len(t, frames, 1)
	assert.Equal(t, "plain output", frames[0].Plain)
}

func TestRecordingLookups(t *testing.T) {
	rec := &Recording{
		Raw: []byte("\x1b[2Jfirst\x1b[2Jsecond match\x1b[2Jthird"),
	}
	rec.Frames = splitFrames(rec.Raw)

	final, ok := rec.FinalFrame()
	require.True(t, ok)
	assert.Equal(t, "third", final.Plain)

	found, ok := rec.LastFrameContaining("match")
	require.True(t, ok)
	assert.Equal(t, "second match", found.Plain)

	_, ok = rec.LastFrameContaining("absent")
	assert.False(t, ok)

	assert.Equal(t, "firstsecond matchthird", rec.Output())

	var empty *Recording
	_, ok = empty.FinalFrame()
	assert.False(t, ok)
}

func TestResponderAnswersQueries(t *testing.T) {
	var replies bytes.Buffer
	r := newResponder(&replies)

	r.Observe([]byte("hello \x1b[6"))
	assert.Zero(t, replies.Len(), "partial query waits for more output")

	r.Observe([]byte("n and \x1b]11;?\x07 done"))
	assert.Equal(t, "\x1b[1;1R\x1b]11;rgb:0000/0000/0000\x07", replies.String())
}

func TestTypeSplitsRunes(t *testing.T) {
	steps := Type("hé")
	require.Len(t, steps, 2)
	assert.Equal(t, []byte("h"), steps[0].Input)
	assert.Equal(t, []byte("é"), steps[1].Input)
	assert.Positive(t, steps[0].Delay)
}
