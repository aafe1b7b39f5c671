// Package input turns logical key presses into changes of the viewer state.
//
// Behaviour is an explicit table keyed by input mode and key. Each entry names
// the action to run and whether the key ends the session; actions return the
// mode the viewer moves to. Keys without an entry are ignored and leave the
// status message alone.
package input

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/csheth/pagescout/internal/search"
	"github.com/csheth/pagescout/internal/state"
)

// Result describes the outcome of one key press.
type Result struct {
	// Handled is false when the key had no entry for the current mode.
	Handled bool
	// Quit asks the caller to end the session.
	Quit bool
}

// Controller owns the view state and the active search index.
type Controller struct {
	view  *state.View
	index *search.Index
	opts  search.Options
}

// New returns a controller driving view. opts applies to every search the
// user submits.
func New(view *state.View, opts search.Options) *Controller {
	return &Controller{
		view:  view,
		index: &search.Index{},
		opts:  opts,
	}
}

// View returns the state the controller mutates.
func (c *Controller) View() *state.View { return c.view }

// Index returns the most recently submitted search.
func (c *Controller) Index() *search.Index { return c.index }

// Resize records a new body viewport without moving page or offset.
func (c *Controller) Resize(width, height int) {
	c.view.Resize(width, height)
}

// Handle runs the transition for key in the current mode.
func (c *Controller) Handle(key Key) Result {
	mode := c.view.Mode()
	t, ok := lookup(mode, key)
	if !ok {
		log.Debug().Str("mode", mode.Name()).Str("key", string(key)).Msg("key ignored")
		return Result{}
	}

	c.view.ClearStatus()
	if t.quit {
		log.Debug().Str("mode", mode.Name()).Str("key", string(key)).Msg("quit requested")
		return Result{Handled: true, Quit: true}
	}

	next := t.do(c, mode, key)
	c.view.SetMode(next)
	log.Debug().
		Str("mode", mode.Name()).
		Str("key", string(key)).
		Str("action", t.name).
		Str("next", next.Name()).
		Int("page", c.view.Page()).
		Int("offset", c.view.Offset()).
		Msg("transition")
	return Result{Handled: true}
}

func (c *Controller) submitPageJump(buffer string) {
	n, err := strconv.Atoi(buffer)
	if err != nil {
		c.view.SetStatus("Invalid page number")
		return
	}
	if n < 1 || n > c.view.Store().PageCount() {
		c.view.SetStatus(fmt.Sprintf("Page %d not found", n))
		return
	}
	c.view.GotoPage(n - 1)
	c.view.SetStatus(fmt.Sprintf("Jumped to page %d", n))
}

func (c *Controller) submitSearch(query string) {
	c.index = search.Rebuild(query, c.view.Store(), c.opts)
	log.Info().
		Str("query", c.index.Query()).
		Bool("case_sensitive", c.opts.CaseSensitive).
		Int("matches", c.index.Len()).
		Msg("search rebuilt")

	switch {
	case !c.index.Active():
		c.view.SetStatus("Search cleared")
	case c.index.Len() == 0:
		c.view.SetStatus(fmt.Sprintf("No matches found for %q", c.index.Query()))
	default:
		first, _ := c.index.Current()
		c.showMatch(first)
	}
}

func (c *Controller) cycle(dir search.Direction) {
	if !c.index.Active() {
		c.view.SetStatus("No active search")
		return
	}
	m, ok := c.index.Advance(dir)
	if !ok {
		c.view.SetStatus(fmt.Sprintf("No matches found for %q", c.index.Query()))
		return
	}
	c.showMatch(m)
}

func (c *Controller) showMatch(m search.Match) {
	c.view.ScrollToMatch(m)
	c.view.SetStatus(fmt.Sprintf("Match %d of %d for %q", c.index.Cursor()+1, c.index.Len(), c.index.Query()))
}
