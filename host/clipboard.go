package host

import "sync"

// MemoryClipboard is a process-local Clipboard.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// GetText implements Clipboard.
func (c *MemoryClipboard) GetText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// SetText implements Clipboard.
func (c *MemoryClipboard) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}
