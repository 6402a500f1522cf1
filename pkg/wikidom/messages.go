package wikidom

// Message keys used by the page helpers.
const (
	MsgHideTOC = "hidetoc"
	MsgShowTOC = "showtoc"
)

// Messages maps interface message keys to display text.
type Messages map[string]string

// DefaultMessages returns the English interface messages.
func DefaultMessages() Messages {
	return Messages{
		MsgHideTOC: "hide",
		MsgShowTOC: "show",
	}
}

// Get returns the text for key, or "⧼key⧽" when it is not defined.
func (m Messages) Get(key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return "⧼" + key + "⧽"
}
