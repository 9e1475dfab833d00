package dictionary

// Entry is the first recorded sense of a word: its part of speech and
// first-sense gloss text. Later senses are never consulted.
type Entry struct {
	PartOfSpeech string `json:"partOfSpeech"`
	Definition   string `json:"definition"`
}

// Provider resolves a word to its first-sense entry. The second return value
// is false when the word has no known definition — whether because the
// upstream source does not know it or because a previous failed lookup was
// memoized. Providers own their failure handling; callers treat "absent" as
// the only failure mode.
type Provider interface {
	Lookup(word string) (Entry, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(word string) (Entry, bool)

// Lookup calls f.
func (f ProviderFunc) Lookup(word string) (Entry, bool) {
	return f(word)
}

// MapProvider is an in-memory Provider backed by a fixed table. Useful for
// tests and offline experiments.
type MapProvider map[string]Entry

// Lookup returns the table entry for word, if any.
func (m MapProvider) Lookup(word string) (Entry, bool) {
	e, ok := m[word]
	return e, ok
}

// Overlay resolves words from pinned first and falls through to base. It
// lets an experiment fix the entries for chosen words (the seed, typically)
// while everything else resolves live.
func Overlay(pinned MapProvider, base Provider) Provider {
	return ProviderFunc(func(word string) (Entry, bool) {
		if e, ok := pinned.Lookup(word); ok {
			return e, true
		}
		return base.Lookup(word)
	})
}
