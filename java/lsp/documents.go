package lsp

import "sync"

// documents holds the text of the documents the client has open.
type documents struct {
	mu    sync.RWMutex
	texts map[string]string
}

func newDocuments() *documents {
	return &documents{texts: make(map[string]string)}
}

func (d *documents) put(uri, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.texts[uri] = text
}

func (d *documents) get(uri string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	text, ok := d.texts[uri]
	return text, ok
}

func (d *documents) remove(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.texts, uri)
}
