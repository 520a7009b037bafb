package tree

import (
	"github.com/google/uuid"
)

// ID identifies a node across rewrites.
type ID = uuid.UUID

// NewID mints a fresh random identifier.
func NewID() ID {
	return uuid.New()
}

// Marker is side-channel metadata attached to a node. The formatter only
// inspects the marker types it knows about; everything else passes through.
type Marker interface {
	MarkerID() ID
}

// SearchResult flags a node found by a search.
type SearchResult struct {
	ID          ID
	Description string
}

func (m SearchResult) MarkerID() ID { return m.ID }

// Generated flags a node that was synthesized rather than parsed.
type Generated struct {
	ID ID
}

func (m Generated) MarkerID() ID { return m.ID }

// TrailingComma sits on the last element of a delimited list that ends with
// a separator. Suffix is the space between the separator and the closing
// delimiter.
type TrailingComma struct {
	ID     ID
	Suffix Space
}

func (m TrailingComma) MarkerID() ID { return m.ID }

// Unknown carries marker data this package does not understand.
type Unknown struct {
	ID   ID
	Type string
	Data map[string]any
}

func (m Unknown) MarkerID() ID { return m.ID }

// Markers is an ordered set of markers.
type Markers struct {
	ID      ID
	Entries []Marker
}

// EmptyMarkers returns a marker set with a fresh id and no entries.
func EmptyMarkers() Markers {
	return Markers{ID: NewID()}
}

func (m Markers) Len() int {
	return len(m.Entries)
}

// Add appends marker, keeping existing entries in order.
func (m Markers) Add(marker Marker) Markers {
	entries := make([]Marker, 0, len(m.Entries)+1)
	entries = append(entries, m.Entries...)
	entries = append(entries, marker)
	return Markers{ID: m.ID, Entries: entries}
}

// FindMarker returns the first marker of type M.
func FindMarker[M Marker](m Markers) (M, bool) {
	for _, e := range m.Entries {
		if found, ok := e.(M); ok {
			return found, true
		}
	}
	var zero M
	return zero, false
}

// HasMarker reports whether m contains a marker of type M.
func HasMarker[M Marker](m Markers) bool {
	_, ok := FindMarker[M](m)
	return ok
}

// RemoveMarkers drops every marker of type M.
func RemoveMarkers[M Marker](m Markers) Markers {
	if !HasMarker[M](m) {
		return m
	}
	var entries []Marker
	for _, e := range m.Entries {
		if _, ok := e.(M); !ok {
			entries = append(entries, e)
		}
	}
	return Markers{ID: m.ID, Entries: entries}
}

// SetMarker replaces any marker of the same type as marker, or appends it.
func SetMarker[M Marker](m Markers, marker M) Markers {
	entries := make([]Marker, 0, len(m.Entries)+1)
	replaced := false
	for _, e := range m.Entries {
		if _, ok := e.(M); ok && !replaced {
			entries = append(entries, marker)
			replaced = true
			continue
		}
		entries = append(entries, e)
	}
	if !replaced {
		entries = append(entries, marker)
	}
	return Markers{ID: m.ID, Entries: entries}
}
