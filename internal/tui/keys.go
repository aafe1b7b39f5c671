package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/pagescout/internal/input"
)

// logicalKeys maps a terminal key event onto controller keys. Runs of runes
// (typed quickly or pasted) become one key per rune.
func logicalKeys(msg tea.KeyMsg) []input.Key {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return []input.Key{input.Key(msg.String())}
		}
		keys := make([]input.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, input.Key(string(r)))
		}
		return keys
	case tea.KeySpace:
		return []input.Key{" "}
	default:
		return []input.Key{input.Key(msg.String())}
	}
}
