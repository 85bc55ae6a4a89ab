package sapling

// Clipboard is the narrow capability widgets use to read and write the
// system clipboard. It is injected by the embedding application.
type Clipboard interface {
	// Read returns the clipboard text, and false if none is available.
	Read() (string, bool)

	// Write replaces the clipboard text.
	Write(text string)
}

// NullClipboard is a Clipboard that holds nothing and discards writes.
// Use it for headless or test setups.
type NullClipboard struct{}

// Read reports no content.
func (NullClipboard) Read() (string, bool) { return "", false }

// Write discards the text.
func (NullClipboard) Write(text string) {}
