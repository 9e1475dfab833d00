package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-wordgraph/pkg/analysis"
	"github.com/dd0wney/cluso-wordgraph/pkg/config"
	"github.com/dd0wney/cluso-wordgraph/pkg/crawler"
	"github.com/dd0wney/cluso-wordgraph/pkg/dictionary"
	"github.com/dd0wney/cluso-wordgraph/pkg/gml"
	"github.com/dd0wney/cluso-wordgraph/pkg/logging"
	"github.com/dd0wney/cluso-wordgraph/pkg/metrics"
	"github.com/dd0wney/cluso-wordgraph/pkg/wordsim"
)

func main() {
	configPath := flag.String("config", "", "Experiment config file (default experiment.yaml, or set WORDGRAPH_CONFIG)")
	outPath := flag.String("out", "", "Write the built graph as GML to this path (overrides gml_path)")
	reportPath := flag.String("report", "", "Write the metrics report to this file instead of stdout")
	metricsAddr := flag.String("metrics-addr", "", "Expose Prometheus metrics on this address (e.g. :9090)")
	flag.Parse()

	// Get config path from env if not provided
	if *configPath == "" {
		if envPath := os.Getenv("WORDGRAPH_CONFIG"); envPath != "" {
			*configPath = envPath
		} else {
			*configPath = "experiment.yaml"
		}
	}

	logger := logging.NewDefaultLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", logging.Error(err))
		os.Exit(1)
	}
	logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

	registry := metrics.NewRegistry()
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, registry, logger)
	}

	logger.Info("word graph build starting",
		logging.String("config", *configPath),
		logging.String("seed", cfg.Seed),
		logging.Int("max_hops", cfg.MaxHops),
	)

	cache := dictionary.LoadCacheStore(cfg.CachePath)
	logger.Info("dictionary cache loaded",
		logging.Path(cfg.CachePath),
		logging.Count(cache.Len()),
	)

	client := dictionary.NewClient(dictionary.DefaultBaseURL, cache,
		dictionary.WithThrottle(cfg.Throttle.Std()),
		dictionary.WithLogger(logger),
		dictionary.WithMetrics(registry),
	)

	// The seed's entry is pinned from config so the crawl root never
	// depends on upstream availability.
	provider := dictionary.Overlay(dictionary.MapProvider{
		cfg.Seed: {PartOfSpeech: cfg.SeedPartOfSpeech, Definition: cfg.SeedDefinition},
	}, client)

	c := crawler.New(cfg.SeedDefinition, cfg.ContextKeywords, cfg.MaxHops, provider,
		crawler.WithLogger(logger),
		crawler.WithMetrics(registry),
	)
	result := c.Build()

	logger.Info("build finished",
		logging.String("run_id", result.RunID),
		logging.Int("nodes", result.Graph.NodeCount()),
		logging.Int("edges", result.Graph.EdgeCount()),
		logging.Int("processed", result.WordsProcessed),
		logging.Int("accepted", result.WordsAccepted),
		logging.Int("rejected", result.WordsRejected),
		logging.Duration("took", result.Duration),
	)

	report := analysis.Analyze(result.Graph)
	if err := writeReport(report, *reportPath); err != nil {
		logger.Error("failed to write report", logging.Error(err))
	}

	gmlPath := cfg.GMLPath
	if *outPath != "" {
		gmlPath = *outPath
	}
	if gmlPath != "" {
		if err := exportGraph(result, gmlPath); err != nil {
			logger.Error("failed to export graph",
				logging.Path(gmlPath), logging.Error(err))
			os.Exit(1)
		}
		logger.Info("graph exported", logging.Path(gmlPath))
	}

	if cfg.WordSimPath != "" {
		pairs, err := wordsim.LoadDatasetFile(cfg.WordSimPath)
		if err != nil {
			logger.Error("failed to load similarity dataset",
				logging.Path(cfg.WordSimPath), logging.Error(err))
			os.Exit(1)
		}
		eval := wordsim.Evaluate(result.Graph, pairs)
		logger.Info("similarity validation",
			logging.Int("total_pairs", eval.TotalPairs),
			logging.Int("scored_pairs", eval.ScoredPairs),
			logging.Int("skipped_pairs", eval.SkippedPairs),
			logging.Float64("spearman", eval.Spearman),
		)
	}
}

func writeReport(report analysis.Report, path string) error {
	if path == "" {
		return report.WriteText(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteText(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func exportGraph(result *crawler.BuildResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gml.Encode(result.Graph, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serveMetrics(addr string, registry *metrics.Registry, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(
		registry.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
	logger.Info("metrics endpoint listening", logging.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics endpoint failed", logging.Error(err))
	}
}
