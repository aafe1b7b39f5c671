package input

import (
	"github.com/csheth/pagescout/internal/search"
	"github.com/csheth/pagescout/internal/state"
)

// action mutates the controller for a key and returns the next mode.
type action func(c *Controller, mode state.Mode, key Key) state.Mode

type transition struct {
	name string
	do   action
	quit bool
}

type modeKind int

const (
	normalKind modeKind = iota
	pageJumpKind
	searchKind
)

func kindOf(m state.Mode) modeKind {
	switch m.(type) {
	case state.PageJump:
		return pageJumpKind
	case state.Search:
		return searchKind
	default:
		return normalKind
	}
}

// fallback handles keys without an explicit entry, such as typed characters.
type fallback struct {
	accept func(Key) bool
	transition
}

var quit = transition{name: "quit", quit: true}

// global applies in every mode before the mode table.
var global = map[Key]transition{
	KeyCtrlC: quit,
}

var table = map[modeKind]map[Key]transition{
	normalKind: {
		KeyLeft:   {name: "prev-page", do: prevPage},
		"p":       {name: "prev-page", do: prevPage},
		KeyRight:  {name: "next-page", do: nextPage},
		"n":       {name: "next-page", do: nextPage},
		KeyUp:     {name: "scroll-up", do: scrollBy(-1)},
		"k":       {name: "scroll-up", do: scrollBy(-1)},
		KeyDown:   {name: "scroll-down", do: scrollBy(1)},
		"j":       {name: "scroll-down", do: scrollBy(1)},
		KeyPgUp:   {name: "page-up", do: scrollViewport(-1)},
		KeyPgDown: {name: "page-down", do: scrollViewport(1)},
		KeyHome:   {name: "first-page", do: firstPage},
		KeyEnd:    {name: "last-page", do: lastPage},
		"g":       {name: "start-page-jump", do: enter(state.PageJump{})},
		"/":       {name: "start-search", do: enter(state.Search{})},
		"F":       {name: "next-match", do: cycleMatch(search.Forward)},
		"B":       {name: "prev-match", do: cycleMatch(search.Backward)},
		"q":       quit,
		KeyEsc:    quit,
	},
	pageJumpKind: {
		KeyEnter:     {name: "submit-page-jump", do: submitPageJump},
		KeyBackspace: {name: "delete-char", do: deleteChar},
		KeyEsc:       {name: "cancel", do: enter(state.Normal{})},
	},
	searchKind: {
		KeyEnter:     {name: "submit-search", do: submitSearch},
		KeyBackspace: {name: "delete-char", do: deleteChar},
		KeyEsc:       {name: "cancel", do: enter(state.Normal{})},
	},
}

var fallbacks = map[modeKind]fallback{
	pageJumpKind: {accept: isDigit, transition: transition{name: "append-digit", do: appendKey}},
	searchKind:   {accept: isPrintable, transition: transition{name: "append-char", do: appendKey}},
}

func lookup(mode state.Mode, key Key) (transition, bool) {
	if t, ok := global[key]; ok {
		return t, true
	}
	kind := kindOf(mode)
	if t, ok := table[kind][key]; ok {
		return t, true
	}
	if fb, ok := fallbacks[kind]; ok && fb.accept(key) {
		return fb.transition, true
	}
	return transition{}, false
}

func prevPage(c *Controller, mode state.Mode, _ Key) state.Mode {
	c.view.PrevPage()
	return mode
}

func nextPage(c *Controller, mode state.Mode, _ Key) state.Mode {
	c.view.NextPage()
	return mode
}

func firstPage(c *Controller, mode state.Mode, _ Key) state.Mode {
	c.view.GotoFirst()
	return mode
}

func lastPage(c *Controller, mode state.Mode, _ Key) state.Mode {
	c.view.GotoLast()
	return mode
}

func scrollBy(delta int) action {
	return func(c *Controller, mode state.Mode, _ Key) state.Mode {
		c.view.Scroll(delta)
		return mode
	}
}

func scrollViewport(sign int) action {
	return func(c *Controller, mode state.Mode, _ Key) state.Mode {
		_, height := c.view.Viewport()
		c.view.Scroll(sign * height)
		return mode
	}
}

// enter switches to next. Text modes always start with an empty buffer.
func enter(next state.Mode) action {
	return func(*Controller, state.Mode, Key) state.Mode {
		return next
	}
}

func cycleMatch(dir search.Direction) action {
	return func(c *Controller, mode state.Mode, _ Key) state.Mode {
		c.cycle(dir)
		return mode
	}
}

func submitPageJump(c *Controller, mode state.Mode, _ Key) state.Mode {
	c.submitPageJump(state.BufferOf(mode))
	return state.Normal{}
}

func submitSearch(c *Controller, mode state.Mode, _ Key) state.Mode {
	c.submitSearch(state.BufferOf(mode))
	return state.Normal{}
}

func appendKey(_ *Controller, mode state.Mode, key Key) state.Mode {
	return withBuffer(mode, state.BufferOf(mode)+string(key))
}

func deleteChar(_ *Controller, mode state.Mode, _ Key) state.Mode {
	buf := []rune(state.BufferOf(mode))
	if len(buf) > 0 {
		buf = buf[:len(buf)-1]
	}
	return withBuffer(mode, string(buf))
}

func withBuffer(mode state.Mode, buf string) state.Mode {
	switch mode.(type) {
	case state.PageJump:
		return state.PageJump{Buffer: buf}
	case state.Search:
		return state.Search{Buffer: buf}
	default:
		return mode
	}
}
