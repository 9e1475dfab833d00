// Package gml reads and writes the semantic graph in the GML attributed
// graph interchange format: nodes identified by string labels, undirected
// edges as source/target pairs, scalar attributes as key-value lines.
package gml

import (
	"fmt"
	"io"
	"strings"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

// escape makes a string safe for a quoted GML value.
func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// unescape reverses escape.
func unescape(s string) string {
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// Encode writes the store as GML. Nodes appear in insertion order with
// integer ids assigned by position; edges follow in insertion order. Word,
// part of speech, and definition ride along as node attributes so a reload
// loses nothing the search layer needs.
func Encode(s *graph.Store, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "graph ["); err != nil {
		return err
	}

	ids := make(map[string]int)
	for i, node := range s.Nodes() {
		ids[node.Word] = i
		fmt.Fprintln(w, "  node [")
		fmt.Fprintf(w, "    id %d\n", i)
		fmt.Fprintf(w, "    label \"%s\"\n", escape(node.Word))
		if node.PartOfSpeech != "" {
			fmt.Fprintf(w, "    pos \"%s\"\n", escape(node.PartOfSpeech))
		}
		if node.Definition != "" {
			fmt.Fprintf(w, "    definition \"%s\"\n", escape(node.Definition))
		}
		fmt.Fprintln(w, "  ]")
	}

	for _, e := range s.Edges() {
		fmt.Fprintln(w, "  edge [")
		fmt.Fprintf(w, "    source %d\n", ids[e.From])
		fmt.Fprintf(w, "    target %d\n", ids[e.To])
		fmt.Fprintf(w, "    weight %g\n", e.Weight)
		fmt.Fprintln(w, "  ]")
	}

	_, err := fmt.Fprintln(w, "]")
	return err
}
