package faq

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var entryValidator = validator.New()

// Catalog is an ordered, read-only set of FAQ entries.
type Catalog struct {
	entries    []Entry
	byQuestion map[string]int
}

// NewCatalog validates entries and freezes them in the given order.
func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New("catalog must contain at least one entry")
	}
	frozen := make([]Entry, len(entries))
	copy(frozen, entries)

	byID := make(map[string]struct{}, len(frozen))
	byQuestion := make(map[string]int, len(frozen))
	for i, entry := range frozen {
		if err := entryValidator.Struct(entry); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, dup := byID[entry.ID]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate id %q", i, entry.ID)
		}
		if _, dup := byQuestion[entry.Question]; dup {
			return nil, fmt.Errorf("catalog entry %d: duplicate question %q", i, entry.Question)
		}
		byID[entry.ID] = struct{}{}
		byQuestion[entry.Question] = i
	}
	return &Catalog{entries: frozen, byQuestion: byQuestion}, nil
}

// Entries returns a copy of the catalog in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Answer looks up the answer of a canonical catalog question.
func (c *Catalog) Answer(question string) (string, bool) {
	idx, ok := c.byQuestion[question]
	if !ok {
		return "", false
	}
	return c.entries[idx].Answer, true
}
