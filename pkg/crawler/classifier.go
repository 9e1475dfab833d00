package crawler

import (
	"strings"

	"github.com/dd0wney/cluso-wordgraph/pkg/dictionary"
	"github.com/dd0wney/cluso-wordgraph/pkg/lexicon"
	"github.com/dd0wney/cluso-wordgraph/pkg/logging"
	"github.com/dd0wney/cluso-wordgraph/pkg/metrics"
)

// Rule names, used as the metrics label and in trace logs. Each names the
// check that decided the verdict.
const (
	RuleShortWord      = "short-word"
	RulePartOfSpeech   = "part-of-speech"
	RuleExactKeyword   = "exact-keyword"
	RuleKeywordStem    = "keyword-stem"
	RuleDefinitionHit  = "definition-overlap"
	RuleDefinitionStem = "definition-stem"
	RuleSeedToken      = "seed-token"
	RuleKeywordLookup  = "keyword-definition"
	RuleNoContext      = "no-context"
)

// stemMatchMinLen guards the substring heuristics: only keywords longer than
// this take part in stem-style matching, so short words don't match
// everything.
const stemMatchMinLen = 3

// admissiblePartsOfSpeech is the closed set of tags the classifier admits.
var admissiblePartsOfSpeech = map[string]bool{
	"noun":      true,
	"verb":      true,
	"adjective": true,
}

// Classifier decides whether a candidate word belongs in the graph, given
// its definition and part of speech, relative to a fixed keyword context and
// the original seed definition.
//
// The policy is a layered heuristic, evaluated in a fixed order with
// first-match-wins semantics. The substring "stem" checks and the reverse
// keyword-definition lookup are deliberately coarse and can admit unrelated
// words sharing a short substring (pine/spine); that behavior is part of the
// contract, not a bug to fix. Later rules are strictly more expensive — the
// last one performs provider lookups — so the order also short-circuits cost.
type Classifier struct {
	keywords   []string // iteration order fixed at construction
	keywordSet map[string]bool
	seedTokens map[string]bool

	normalizer *lexicon.Normalizer
	provider   dictionary.Provider
	logger     logging.Logger
	metrics    *metrics.Registry
}

// NewClassifier builds a classifier for one construction run. The provider
// is shared with the crawler so rule evaluation benefits from the same cache.
func NewClassifier(
	seedDefinition string,
	contextKeywords []string,
	normalizer *lexicon.Normalizer,
	provider dictionary.Provider,
	logger logging.Logger,
	reg *metrics.Registry,
) *Classifier {
	if logger == nil {
		logger = logging.NopLogger{}
	}

	keywordSet := make(map[string]bool, len(contextKeywords))
	keywords := make([]string, 0, len(contextKeywords))
	for _, kw := range contextKeywords {
		kw = strings.ToLower(kw)
		if keywordSet[kw] {
			continue
		}
		keywordSet[kw] = true
		keywords = append(keywords, kw)
	}

	seedTokens := make(map[string]bool)
	for _, tok := range normalizer.Normalize(seedDefinition) {
		seedTokens[tok] = true
	}

	return &Classifier{
		keywords:   keywords,
		keywordSet: keywordSet,
		seedTokens: seedTokens,
		normalizer: normalizer,
		provider:   provider,
		logger:     logger.With(logging.Component("classifier")),
		metrics:    reg,
	}
}

// IsRelevant reports whether word should be admitted, based on its
// definition text and part of speech.
func (c *Classifier) IsRelevant(word, definitionText, partOfSpeech string) bool {
	accepted, rule := c.evaluate(word, definitionText, partOfSpeech)

	verdict := "reject"
	if accepted {
		verdict = "accept"
	}
	c.metrics.ObserveVerdict(verdict, rule)
	c.logger.Debug("relevance verdict",
		logging.Word(word),
		logging.String("verdict", verdict),
		logging.Rule(rule),
	)
	return accepted
}

// evaluate runs the rules in order and returns the verdict plus the rule
// that decided it.
func (c *Classifier) evaluate(word, definitionText, partOfSpeech string) (bool, string) {
	// 1. Very short words are noise unless they appeared in the seed text
	if len(word) <= 2 && !c.seedTokens[word] {
		return false, RuleShortWord
	}

	// 2. Only nouns, verbs, and adjectives are admissible
	if !admissiblePartsOfSpeech[partOfSpeech] {
		return false, RulePartOfSpeech
	}

	// 3. Exact keyword match
	if c.keywordSet[word] {
		return true, RuleExactKeyword
	}

	// 4. Stem-style match against a keyword ('sleeping' matches 'sleep')
	for _, kw := range c.keywords {
		if len(kw) > stemMatchMinLen && (strings.Contains(word, kw) || strings.Contains(kw, word)) {
			return true, RuleKeywordStem
		}
	}

	definitionWords := c.normalizer.Normalize(definitionText)

	// 5. Definition shares a token with the keyword context
	for _, dw := range definitionWords {
		if c.keywordSet[dw] {
			return true, RuleDefinitionHit
		}
	}

	// 6. Stem-style match between a keyword and a definition token
	for _, kw := range c.keywords {
		if len(kw) <= stemMatchMinLen {
			continue
		}
		for _, dw := range definitionWords {
			if len(dw) <= stemMatchMinLen {
				continue
			}
			if strings.Contains(dw, kw) || strings.Contains(kw, dw) {
				return true, RuleDefinitionStem
			}
		}
	}

	// 7. Seed-definition words get through regardless of context
	if c.seedTokens[word] {
		return true, RuleSeedToken
	}

	// 8. Reverse lookup: the word appears inside a keyword's own definition.
	// Lookup failures for a keyword are skipped, not propagated.
	for _, kw := range c.keywords {
		if len(kw) <= stemMatchMinLen {
			continue
		}
		entry, ok := c.provider.Lookup(kw)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(entry.Definition), word) {
			return true, RuleKeywordLookup
		}
	}

	return false, RuleNoContext
}

// InSeed reports whether word is among the normalized seed-definition tokens.
func (c *Classifier) InSeed(word string) bool {
	return c.seedTokens[word]
}
