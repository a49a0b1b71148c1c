package textkit

import "errors"

var (
	// ErrUnknownCategoryKey is returned when a lexicon has no entry for a key.
	ErrUnknownCategoryKey = errors.New("unknown category key")
	// ErrEmptyTemplateSet is returned when a lexicon entry exists but holds no items.
	ErrEmptyTemplateSet = errors.New("empty template set")
)

// Table is a read-only word/template list keyed by category value.
// Tables are package-level data in each tool module and never mutated after init.
type Table map[string][]string

// Entries returns the list for key, or ErrUnknownCategoryKey.
func (t Table) Entries(key string) ([]string, error) {
	items, ok := t[key]
	if !ok {
		return nil, ErrUnknownCategoryKey
	}
	return items, nil
}

// EntriesOr returns the list for key, falling back to fallbackKey when key is absent.
// The fallback key must exist in the table.
func (t Table) EntriesOr(key, fallbackKey string) []string {
	if items, ok := t[key]; ok {
		return items
	}
	return t[fallbackKey]
}

// Has reports whether the table has an entry for key.
func (t Table) Has(key string) bool {
	_, ok := t[key]
	return ok
}
