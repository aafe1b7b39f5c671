package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/pagescout/internal/textwrap"
	"github.com/csheth/pagescout/internal/viewmodel"
)

const ellipsis = "…"

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	view := m.ctrl.View()
	vm := viewmodel.Build(view.Store(), view, m.ctrl.Index())

	rows := make([]string, 0, m.layout.windowHeight)
	rows = append(rows, m.headerView(vm))
	rows = append(rows, m.bodyView(vm)...)
	rows = append(rows, m.statusView(vm), m.footerView(vm))
	return strings.Join(rows, "\n")
}

func (m *model) headerView(vm viewmodel.ViewModel) string {
	return m.styles.header.Render(m.fit(vm.Header))
}

func (m *model) bodyView(vm viewmodel.ViewModel) []string {
	pad := strings.Repeat(" ", bodyPadding)
	rows := make([]string, 0, m.layout.bodyHeight)
	for _, line := range vm.Lines {
		rows = append(rows, pad+m.renderLine(line))
	}
	for len(rows) < m.layout.bodyHeight {
		rows = append(rows, "")
	}
	return rows
}

// renderLine styles the plain and highlighted parts of one row. Spans are
// sorted and do not overlap; an empty span becomes one highlighted blank.
func (m *model) renderLine(line viewmodel.Line) string {
	var b strings.Builder
	pos := 0
	for _, span := range line.Highlights {
		if span.Start > pos {
			b.WriteString(m.styles.content.Render(line.Text[pos:span.Start]))
		}
		style := m.styles.highlight
		if span.Current {
			style = m.styles.current
		}
		text := line.Text[span.Start:span.End]
		if text == "" {
			// match inside the whitespace dropped at a wrap break
			text = " "
		}
		b.WriteString(style.Render(text))
		pos = span.End
	}
	if pos < len(line.Text) {
		b.WriteString(m.styles.content.Render(line.Text[pos:]))
	}
	return b.String()
}

func (m *model) statusView(vm viewmodel.ViewModel) string {
	position := positionLabel(vm, m.layout.bodyHeight)
	room := m.layout.windowWidth - textwrap.DisplayWidth(position)
	if position != "" {
		room--
	}
	status := ""
	if room > 0 {
		status = truncate.StringWithTail(vm.Status, uint(room), ellipsis)
	}
	if position == "" {
		return m.styles.status.Render(status)
	}
	gap := max(1, m.layout.windowWidth-textwrap.DisplayWidth(status)-textwrap.DisplayWidth(position))
	return m.styles.status.Render(status) + strings.Repeat(" ", gap) + m.styles.position.Render(position)
}

// positionLabel describes the visible row range when the page does not fit
// the body.
func positionLabel(vm viewmodel.ViewModel, bodyHeight int) string {
	if vm.TotalRows <= bodyHeight {
		return ""
	}
	last := min(vm.Offset+bodyHeight, vm.TotalRows)
	return fmt.Sprintf("%d-%d/%d", vm.Offset+1, last, vm.TotalRows)
}

func (m *model) footerView(vm viewmodel.ViewModel) string {
	bindings := make([]key.Binding, 0, len(vm.Footer))
	for _, hint := range vm.Footer {
		bindings = append(bindings, key.NewBinding(key.WithKeys(hint.Key), key.WithHelp(hint.Key, hint.Desc)))
	}
	return m.help.ShortHelpView(bindings)
}

func (m *model) fit(text string) string {
	return truncate.StringWithTail(text, uint(m.layout.windowWidth), ellipsis)
}
