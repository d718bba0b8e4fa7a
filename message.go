package scamintel

// Metadata keys used across sources.
const (
	MetaPath   = "path"
	MetaLine   = "line"
	MetaSender = "sender"
)

// Message is one unit of scanned text and where it came from.
type Message struct {
	// Text is the raw content of the message
	Text string

	// Source type: "stdin", "file", "text"
	Source string
	Path   string

	// LineOffset is the line number of the first line of Text within the
	// resource, 0 for whole-file messages.
	LineOffset int

	Metadata map[string]string
}

func (m *Message) Set(key, value string) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]string)
	}
	m.Metadata[key] = value
}

// Get returns a metadata value by key, or empty string if not found.
func (m *Message) Get(key string) string {
	if m == nil || m.Metadata == nil {
		return ""
	}
	return m.Metadata[key]
}
