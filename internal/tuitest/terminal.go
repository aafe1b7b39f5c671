package tuitest

import (
	"bytes"
	"io"
)

// Terminal queries bubbletea and termenv may send at startup, paired with
// the replies a real terminal would give. Without replies some queries block
// until their timeout.
var terminalReplies = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderKeep = 64
	responderMax  = 256
)

// responder watches program output for terminal queries and answers them.
type responder struct {
	w       io.Writer
	pending []byte
}

func newResponder(w io.Writer) *responder {
	return &responder{w: w, pending: make([]byte, 0, responderMax)}
}

// Observe feeds a chunk of program output to the responder.
func (r *responder) Observe(chunk []byte) {
	r.pending = append(r.pending, chunk...)
	for r.answerOne() {
	}
	// Keep a tail so queries split across reads are still seen.
	if len(r.pending) > responderMax {
		r.pending = append(r.pending[:0], r.pending[len(r.pending)-responderKeep:]...)
	}
}

// answerOne replies to the earliest pending query, if any.
func (r *responder) answerOne() bool {
	first, at := -1, -1
	for i, pair := range terminalReplies {
		idx := bytes.Index(r.pending, pair.query)
		if idx >= 0 && (at < 0 || idx < at) {
			first, at = i, idx
		}
	}
	if first < 0 {
		return false
	}
	pair := terminalReplies[first]
	r.pending = r.pending[at+len(pair.query):]
	_, _ = r.w.Write(pair.reply)
	return true
}
