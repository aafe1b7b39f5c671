package state

// Mode is the active input mode. It is one of Normal, PageJump, or Search;
// text-entry modes carry their own pending buffer.
type Mode interface {
	// Name returns the mode name for display and logs.
	Name() string
	mode()
}

// Normal is the navigation mode.
type Normal struct{}

// PageJump collects the digits of a 1-based page number.
type PageJump struct {
	Buffer string
}

// Search collects a query.
type Search struct {
	Buffer string
}

func (Normal) Name() string   { return "normal" }
func (PageJump) Name() string { return "page-jump" }
func (Search) Name() string   { return "search" }

func (Normal) mode()   {}
func (PageJump) mode() {}
func (Search) mode()   {}

// BufferOf returns the pending text of m, or "" for modes without a buffer.
func BufferOf(m Mode) string {
	switch v := m.(type) {
	case PageJump:
		return v.Buffer
	case Search:
		return v.Buffer
	default:
		return ""
	}
}
