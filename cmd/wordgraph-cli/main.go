package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-wordgraph/pkg/analysis"
	"github.com/dd0wney/cluso-wordgraph/pkg/gml"
	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
	"github.com/dd0wney/cluso-wordgraph/pkg/search"
)

type CLI struct {
	graph   *graph.Store
	engine  *search.Engine
	index   *search.DefinitionIndex
	scanner *bufio.Scanner
}

func main() {
	graphPath := flag.String("graph", "graph.gml", "Graph file to explore")
	flag.Parse()

	printBanner()

	fmt.Printf("📂 Loading graph from %s...\n", *graphPath)
	f, err := os.Open(*graphPath)
	if err != nil {
		fmt.Printf("❌ Failed to open graph: %v\n", err)
		os.Exit(1)
	}
	g, err := gml.Decode(f)
	f.Close()
	if err != nil {
		fmt.Printf("❌ Failed to parse graph: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Graph loaded\n")
	fmt.Printf("   Words: %d\n", g.NodeCount())
	fmt.Printf("   Connections: %d\n\n", g.EdgeCount())

	cli := &CLI{
		graph:   g,
		engine:  search.NewEngine(g),
		index:   search.NewDefinitionIndex(g),
		scanner: bufio.NewScanner(os.Stdin),
	}

	fmt.Println("Type 'help' for available commands, 'exit' to quit")
	fmt.Println()

	cli.run()
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                                                           ║
║   ██╗    ██╗ ██████╗ ██████╗ ██████╗ ███████╗            ║
║   ██║    ██║██╔═══██╗██╔══██╗██╔══██╗██╔════╝            ║
║   ██║ █╗ ██║██║   ██║██████╔╝██║  ██║███████╗            ║
║   ██║███╗██║██║   ██║██╔══██╗██║  ██║╚════██║            ║
║   ╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝███████║            ║
║    ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚══════╝            ║
║                                                           ║
║            Word Graph Interactive CLI v1.0                ║
║                                                           ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}

func (cli *CLI) run() {
	for {
		fmt.Print("wordgraph> ")

		if !cli.scanner.Scan() {
			break
		}

		input := strings.TrimSpace(cli.scanner.Text())
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" {
			fmt.Println("👋 Goodbye!")
			break
		}

		cli.executeCommand(input)
		fmt.Println()
	}
}

func (cli *CLI) executeCommand(input string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	command := strings.ToLower(parts[0])

	switch command {
	case "help":
		cli.showHelp()

	case "stats", "status":
		cli.showStats()

	case "similar", "sim":
		if len(parts) < 2 {
			fmt.Println("Usage: similar <word> [top-n]")
			return
		}
		topN := 10
		if len(parts) >= 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil && n > 0 {
				topN = n
			}
		}
		cli.showSimilar(strings.ToLower(parts[1]), topN)

	case "path", "p":
		if len(parts) < 3 {
			fmt.Println("Usage: path <word1> <word2> [max-paths]")
			return
		}
		maxPaths := 5
		if len(parts) >= 4 {
			if n, err := strconv.Atoi(parts[3]); err == nil && n > 0 {
				maxPaths = n
			}
		}
		cli.showPaths(strings.ToLower(parts[1]), strings.ToLower(parts[2]), maxPaths)

	case "neighborhood", "neigh", "n":
		if len(parts) < 2 {
			fmt.Println("Usage: neighborhood <word> [radius]")
			return
		}
		radius := 2
		if len(parts) >= 3 {
			if r, err := strconv.Atoi(parts[2]); err == nil && r > 0 {
				radius = r
			}
		}
		cli.showNeighborhood(strings.ToLower(parts[1]), radius)

	case "define", "def":
		if len(parts) < 2 {
			fmt.Println("Usage: define <word>")
			return
		}
		cli.showDefinition(strings.ToLower(parts[1]))

	case "search", "s":
		if len(parts) < 2 {
			fmt.Println("Usage: search <term> [term...]")
			return
		}
		cli.searchDefinitions(strings.Join(parts[1:], " "))

	case "clear":
		fmt.Print("\033[H\033[2J")

	default:
		fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n", command)
	}
}

func (cli *CLI) showHelp() {
	help := `
📖 Available Commands:

🔍 Semantic Queries:
  similar <word> [n]       Rank words by closeness to <word>
  sim <word> [n]           Shorthand for similar
  path <w1> <w2> [n]       Show shortest connecting paths
  p <w1> <w2> [n]          Shorthand for path
  neighborhood <word> [r]  Group nearby words by hop distance
  neigh <word> [r]         Shorthand for neighborhood

📚 Lexical Inspection:
  define <word>            Show a word's stored definition
  def <word>               Shorthand for define
  search <terms>           Find words whose definitions mention terms
  s <terms>                Shorthand for search

🎮 Other:
  stats                    Show graph statistics
  clear                    Clear screen
  help                     Show this help
  exit/quit                Exit the CLI

💡 Examples:
  similar state 5
  path state ease
  neighborhood condition 2
  search freedom effort
`
	fmt.Println(help)
}

func (cli *CLI) showStats() {
	report := analysis.Analyze(cli.graph)

	fmt.Println("📊 Graph Statistics:")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	if err := report.WriteText(os.Stdout); err != nil {
		fmt.Printf("❌ Failed to render report: %v\n", err)
	}
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━")
}

func (cli *CLI) showSimilar(word string, topN int) {
	results := cli.engine.FindSimilarWords(word, topN)
	if len(results) == 0 {
		if !cli.graph.HasNode(word) {
			fmt.Printf("❌ Word %q is not in the graph\n", word)
		} else {
			fmt.Printf("No words reachable from %q\n", word)
		}
		return
	}

	fmt.Printf("🔍 Words similar to %q\n", word)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	for i, r := range results {
		fmt.Printf("  #%d: %-20s (score: %.4f)\n", i+1, r.Word, r.Score)
	}
}

func (cli *CLI) showPaths(word1, word2 string, maxPaths int) {
	paths := cli.engine.FindConnectingPaths(word1, word2, maxPaths)
	if len(paths) == 0 {
		fmt.Printf("❌ No path found between %q and %q\n", word1, word2)
		return
	}

	fmt.Printf("🛤️  Shortest Paths: %s → %s\n", word1, word2)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Length: %d hops\n\n", len(paths[0])-1)
	for i, path := range paths {
		fmt.Printf("  #%d: %s\n", i+1, strings.Join(path, " → "))
	}
}

func (cli *CLI) showNeighborhood(word string, radius int) {
	byHop := cli.engine.Neighborhood(word, radius)
	if len(byHop) == 0 {
		if !cli.graph.HasNode(word) {
			fmt.Printf("❌ Word %q is not in the graph\n", word)
		} else {
			fmt.Printf("%q has no neighbors\n", word)
		}
		return
	}

	fmt.Printf("👥 Neighborhood of %q (radius %d)\n", word, radius)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	for hop := 1; hop <= radius; hop++ {
		words, ok := byHop[hop]
		if !ok {
			continue
		}
		fmt.Printf("  %d hop(s): %s\n", hop, strings.Join(words, ", "))
	}
}

func (cli *CLI) showDefinition(word string) {
	node := cli.graph.GetNode(word)
	if node == nil {
		fmt.Printf("❌ Word %q is not in the graph\n", word)
		return
	}

	fmt.Printf("📚 %s", node.Word)
	if node.PartOfSpeech != "" {
		fmt.Printf(" (%s)", node.PartOfSpeech)
	}
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	if node.Definition == "" {
		fmt.Println("  (no stored definition)")
	} else {
		fmt.Printf("  %s\n", node.Definition)
	}
	fmt.Printf("\nConnections: %d\n", cli.graph.Degree(word))
}

func (cli *CLI) searchDefinitions(query string) {
	results := cli.index.Search(query)
	if len(results) == 0 {
		fmt.Printf("No definitions mention %q\n", query)
		return
	}

	fmt.Printf("🔎 Definitions mentioning %q\n", query)
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	for i, r := range results {
		if i >= 20 {
			fmt.Printf("  ... and %d more\n", len(results)-i)
			break
		}
		fmt.Printf("  %-20s (score: %.1f)\n", r.Word, r.Score)
	}
}
