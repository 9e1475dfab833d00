package crawler

import (
	"testing"

	"github.com/dd0wney/cluso-wordgraph/pkg/dictionary"
	"github.com/dd0wney/cluso-wordgraph/pkg/lexicon"
	"github.com/dd0wney/cluso-wordgraph/pkg/logging"
)

// countingProvider counts lookups per word, for verifying short-circuit
// behavior and cache discipline.
type countingProvider struct {
	entries map[string]dictionary.Entry
	calls   map[string]int
}

func newCountingProvider(entries map[string]dictionary.Entry) *countingProvider {
	return &countingProvider{entries: entries, calls: make(map[string]int)}
}

func (p *countingProvider) Lookup(word string) (dictionary.Entry, bool) {
	p.calls[word]++
	e, ok := p.entries[word]
	return e, ok
}

func newTestClassifier(seed string, keywords []string, provider dictionary.Provider) *Classifier {
	return NewClassifier(seed, keywords, lexicon.NewNormalizer(), provider, logging.NopLogger{}, nil)
}

func TestRejectShortWordOutsideSeed(t *testing.T) {
	c := newTestClassifier("a state of ease", []string{"state"}, dictionary.MapProvider{})

	if c.IsRelevant("ox", "a bovine animal kept for state purposes", "noun") {
		t.Error("two-letter word outside the seed must be rejected before any accept rule")
	}
}

func TestShortSeedWordPassesLengthGuard(t *testing.T) {
	// "ox" is in the seed, so the length guard does not apply; it is then
	// accepted by the definition-overlap rule.
	c := newTestClassifier("an ox at ease", []string{"bovine"}, dictionary.MapProvider{})

	if !c.IsRelevant("ox", "a bovine animal", "noun") {
		t.Error("short word in the seed should survive the length guard")
	}
}

func TestRejectInadmissiblePartOfSpeech(t *testing.T) {
	c := newTestClassifier("a state of ease", []string{"state", "ease"}, dictionary.MapProvider{})

	// Keyword overlap everywhere, but the POS gate comes first
	if c.IsRelevant("state", "a state of ease", "pronoun") {
		t.Error("pronoun must be rejected regardless of context overlap")
	}
	if c.IsRelevant("state", "a state of ease", "adverb") {
		t.Error("adverb must be rejected regardless of context overlap")
	}
}

func TestAcceptExactKeyword(t *testing.T) {
	c := newTestClassifier("irrelevant seed", []string{"comfort"}, dictionary.MapProvider{})

	if !c.IsRelevant("comfort", "unrelated definition text", "noun") {
		t.Error("exact keyword member must be accepted")
	}
}

func TestAcceptKeywordStemMatch(t *testing.T) {
	c := newTestClassifier("irrelevant seed", []string{"sleep"}, dictionary.MapProvider{})

	if !c.IsRelevant("sleeping", "unrelated definition text", "verb") {
		t.Error("'sleeping' should stem-match keyword 'sleep'")
	}
}

// TestStemMatchIsCoarse documents the known over-inclusiveness of the
// substring heuristic: unrelated words sharing a substring are admitted.
func TestStemMatchIsCoarse(t *testing.T) {
	c := newTestClassifier("irrelevant seed", []string{"pine"}, dictionary.MapProvider{})

	if !c.IsRelevant("spine", "a column of bone", "noun") {
		t.Error("'spine' contains 'pine'; the coarse stem rule admits it by contract")
	}
}

func TestShortKeywordsSkipStemMatching(t *testing.T) {
	// Keywords of length <= 3 never stem-match
	c := newTestClassifier("irrelevant seed", []string{"eat"}, dictionary.MapProvider{})

	if c.IsRelevant("beaten", "struck repeatedly", "adjective") {
		t.Error("three-letter keyword must not participate in stem matching")
	}
}

func TestAcceptDefinitionOverlap(t *testing.T) {
	c := newTestClassifier("irrelevant seed", []string{"furniture"}, dictionary.MapProvider{})

	if !c.IsRelevant("table", "an item of furniture with a flat top", "noun") {
		t.Error("definition containing a context keyword must be accepted")
	}
}

func TestAcceptDefinitionStem(t *testing.T) {
	c := newTestClassifier("irrelevant seed", []string{"comfort"}, dictionary.MapProvider{})

	if !c.IsRelevant("cushion", "something soft that makes a seat comfortable", "noun") {
		t.Error("'comfortable' in the definition should stem-match keyword 'comfort'")
	}
}

func TestAcceptSeedToken(t *testing.T) {
	c := newTestClassifier("a state of ease provided by a mattress", []string{"zzzz"}, dictionary.MapProvider{})

	if !c.IsRelevant("mattress", "a pad for sleeping on", "noun") {
		t.Error("seed-definition word should be accepted by the leniency rule")
	}
}

func TestAcceptReverseKeywordLookup(t *testing.T) {
	provider := dictionary.MapProvider{
		"furniture": {PartOfSpeech: "noun", Definition: "Large movable items such as a table or bed"},
	}
	c := newTestClassifier("irrelevant seed", []string{"furniture"}, provider)

	if !c.IsRelevant("table", "zzz qqq xxx", "noun") {
		t.Error("word appearing in a keyword's own definition should be accepted")
	}
}

func TestReverseLookupFailuresAreSkipped(t *testing.T) {
	// First keyword has no definition; the second one decides.
	provider := dictionary.MapProvider{
		"cushion": {PartOfSpeech: "noun", Definition: "a soft pillow for a chair"},
	}
	c := newTestClassifier("irrelevant seed", []string{"qqqq", "cushion"}, provider)

	if !c.IsRelevant("pillow", "zzz qqq xxx", "noun") {
		t.Error("a keyword lookup failure must be skipped, not end the evaluation")
	}
}

func TestRejectNoContext(t *testing.T) {
	c := newTestClassifier("a state of ease", []string{"state", "ease"}, dictionary.MapProvider{})

	if c.IsRelevant("volcano", "a rupture in the crust of a planet", "noun") {
		t.Error("word with no connection to context must be rejected")
	}
}

// TestEarlyRulesSkipProviderLookups verifies the short-circuit contract:
// words decided by cheap rules never trigger the expensive reverse lookup.
func TestEarlyRulesSkipProviderLookups(t *testing.T) {
	provider := newCountingProvider(map[string]dictionary.Entry{
		"comfort": {PartOfSpeech: "noun", Definition: "a state of ease"},
	})
	c := newTestClassifier("irrelevant seed", []string{"comfort"}, provider)

	if !c.IsRelevant("comfort", "whatever", "noun") {
		t.Fatal("exact keyword should be accepted")
	}
	if len(provider.calls) != 0 {
		t.Errorf("exact-keyword accept must not call the provider, got calls: %v", provider.calls)
	}

	// A no-context rejection walks every long keyword once
	if c.IsRelevant("volcano", "a rupture in the crust", "noun") {
		t.Fatal("expected rejection")
	}
	if provider.calls["comfort"] != 1 {
		t.Errorf("reverse lookup should have consulted 'comfort' once, got %d", provider.calls["comfort"])
	}
}
