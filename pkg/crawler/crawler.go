package crawler

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-wordgraph/pkg/dictionary"
	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
	"github.com/dd0wney/cluso-wordgraph/pkg/lexicon"
	"github.com/dd0wney/cluso-wordgraph/pkg/logging"
	"github.com/dd0wney/cluso-wordgraph/pkg/metrics"
)

// queueEntry is one pending word with its breadth-first distance from the
// seed definition.
type queueEntry struct {
	word string
	hop  int
}

// BuildResult summarizes one construction run.
type BuildResult struct {
	RunID          string
	Graph          *graph.Store
	WordsProcessed int
	WordsAccepted  int
	WordsRejected  int
	Duration       time.Duration
}

// Crawler builds a semantic graph by hop-bounded breadth-first expansion
// from a seed definition. It discovers candidate words in definitions,
// consults the classifier for admission, and links accepted words.
//
// Construction is single-threaded: each step depends on the processed-set
// state left by earlier steps, and the provider applies its own throttling.
type Crawler struct {
	seedDefinition string
	maxHops        int

	normalizer *lexicon.Normalizer
	provider   dictionary.Provider
	classifier *Classifier
	logger     logging.Logger
	metrics    *metrics.Registry
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithLogger sets the structured logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Crawler) { c.logger = l }
}

// WithMetrics sets the metrics registry.
func WithMetrics(m *metrics.Registry) Option {
	return func(c *Crawler) { c.metrics = m }
}

// New creates a crawler. The provider is shared between the crawler and its
// classifier, so both draw on one cache.
func New(seedDefinition string, contextKeywords []string, maxHops int, provider dictionary.Provider, opts ...Option) *Crawler {
	c := &Crawler{
		seedDefinition: seedDefinition,
		maxHops:        maxHops,
		normalizer:     lexicon.NewNormalizer(),
		provider:       provider,
		logger:         logging.NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.classifier = NewClassifier(
		seedDefinition, contextKeywords, c.normalizer, provider, c.logger, c.metrics)
	return c
}

// Build runs the breadth-first expansion to completion and returns the
// finished graph. The returned store is not mutated afterwards and is safe
// for read-only search.
func (c *Crawler) Build() *BuildResult {
	start := time.Now()
	runID := uuid.New().String()
	log := c.logger.With(logging.Component("crawler"), logging.String("run_id", runID))

	store := graph.NewStore()
	processed := make(map[string]bool)

	seedWords := c.normalizer.Normalize(c.seedDefinition)
	log.Info("crawl starting",
		logging.String("seed", c.seedDefinition),
		logging.Int("max_hops", c.maxHops),
		logging.Count(len(seedWords)),
	)

	queue := make([]queueEntry, 0, len(seedWords))
	for _, w := range seedWords {
		queue = append(queue, queueEntry{word: w, hop: 0})
	}

	result := &BuildResult{RunID: runID, Graph: store}

	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]
		word, hop := entry.word, entry.hop

		if hop > c.maxHops {
			log.Debug("skip: hop limit exceeded", logging.Word(word), logging.Hop(hop))
			continue
		}
		if processed[word] {
			log.Debug("skip: already processed", logging.Word(word))
			continue
		}
		processed[word] = true
		result.WordsProcessed++
		c.metrics.ObserveWordProcessed()

		defEntry, ok := c.provider.Lookup(word)
		if !ok {
			log.Debug("skip: no definition", logging.Word(word), logging.Hop(hop))
			continue
		}

		// Seed words are admitted unconditionally
		accepted := hop == 0 ||
			c.classifier.IsRelevant(word, defEntry.Definition, defEntry.PartOfSpeech)
		if !accepted {
			// Rejected words are not expanded: their definitions are never
			// scanned for further candidates.
			result.WordsRejected++
			log.Debug("rejected", logging.Word(word), logging.Hop(hop))
			continue
		}
		result.WordsAccepted++

		if store.GetNode(word) == nil {
			store.AddNode(graph.NewNode(word, defEntry.PartOfSpeech, defEntry.Definition))
			log.Debug("node added", logging.Word(word), logging.Hop(hop))
		}

		c.expand(store, processed, &queue, word, hop, defEntry.Definition, log)
	}

	c.metrics.SetGraphSize(store.NodeCount(), store.EdgeCount())
	result.Duration = time.Since(start)

	log.Info("crawl complete",
		logging.Int("nodes", store.NodeCount()),
		logging.Int("edges", store.EdgeCount()),
		logging.Int("processed", result.WordsProcessed),
		logging.Duration("took", result.Duration),
	)
	return result
}

// expand scans the definition of an accepted word for candidate words,
// linking and enqueueing the ones that pass the classifier.
func (c *Crawler) expand(
	store *graph.Store,
	processed map[string]bool,
	queue *[]queueEntry,
	word string,
	hop int,
	definition string,
	log logging.Logger,
) {
	for _, newWord := range c.normalizer.Normalize(definition) {
		if newWord == word {
			continue // a word defined in terms of itself makes no edge
		}

		if processed[newWord] {
			// Already handled elsewhere in the crawl; just close the link
			// if both sides made it into the graph.
			if store.HasNode(newWord) && store.HasNode(word) && !store.HasEdge(word, newWord) {
				if err := store.AddEdge(word, newWord, graph.DefaultEdgeWeight); err != nil {
					log.Error("edge rejected", logging.Word(word),
						logging.String("other", newWord), logging.Error(err))
				} else {
					log.Debug("edge added", logging.Word(word), logging.String("other", newWord))
				}
			}
			continue
		}

		newEntry, ok := c.provider.Lookup(newWord)
		if !ok {
			log.Debug("candidate has no definition", logging.Word(newWord))
			continue
		}

		if !c.classifier.IsRelevant(newWord, newEntry.Definition, newEntry.PartOfSpeech) {
			continue
		}

		if store.GetNode(newWord) == nil {
			store.AddNode(graph.NewNode(newWord, newEntry.PartOfSpeech, newEntry.Definition))
			log.Debug("node added", logging.Word(newWord), logging.Hop(hop+1))
		}

		if store.HasNode(word) && !store.HasEdge(word, newWord) {
			if err := store.AddEdge(word, newWord, graph.DefaultEdgeWeight); err != nil {
				log.Error("edge rejected", logging.Word(word),
					logging.String("other", newWord), logging.Error(err))
			} else {
				log.Debug("edge added", logging.Word(word), logging.String("other", newWord))
			}
		}

		if hop+1 <= c.maxHops {
			*queue = append(*queue, queueEntry{word: newWord, hop: hop + 1})
			log.Debug("queued", logging.Word(newWord), logging.Hop(hop+1))
		}
	}
}
