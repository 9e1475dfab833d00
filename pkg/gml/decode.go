package gml

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-wordgraph/pkg/graph"
)

type nodeBlock struct {
	id         int
	hasID      bool
	word       string
	pos        string
	definition string
}

type edgeBlock struct {
	source, target int
	weight         float64
	hasSource      bool
	hasTarget      bool
}

// Decode parses a GML document back into a Store. The parser is line
// oriented and tolerant of attributes it does not recognize; quoted numeric
// values are coerced to their numeric types so documents written by other
// tools round-trip cleanly.
func Decode(r io.Reader) (*graph.Store, error) {
	store := graph.NewStore()
	words := make(map[int]string)

	var node *nodeBlock
	var edge *edgeBlock
	var edges []edgeBlock
	depth := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value := splitKeyValue(line)
		switch {
		case value == "[":
			depth++
			switch key {
			case "node":
				node = &nodeBlock{}
			case "edge":
				edge = &edgeBlock{weight: graph.DefaultEdgeWeight}
			}
		case key == "]":
			if depth == 0 {
				return nil, fmt.Errorf("gml: line %d: unbalanced close bracket", lineNo)
			}
			depth--
			if node != nil {
				if !node.hasID || node.word == "" {
					return nil, fmt.Errorf("gml: line %d: node missing id or label", lineNo)
				}
				words[node.id] = node.word
				store.AddNode(&graph.Node{
					Word:         node.word,
					PartOfSpeech: node.pos,
					Definition:   node.definition,
				})
				node = nil
			} else if edge != nil {
				if !edge.hasSource || !edge.hasTarget {
					return nil, fmt.Errorf("gml: line %d: edge missing source or target", lineNo)
				}
				edges = append(edges, *edge)
				edge = nil
			}
		case node != nil:
			applyNodeAttr(node, key, value)
		case edge != nil:
			if err := applyEdgeAttr(edge, key, value); err != nil {
				return nil, fmt.Errorf("gml: line %d: %w", lineNo, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gml: read: %w", err)
	}
	if depth != 0 {
		return nil, fmt.Errorf("gml: unexpected end of input, %d blocks open", depth)
	}

	for _, e := range edges {
		from, ok := words[e.source]
		if !ok {
			return nil, fmt.Errorf("gml: edge references unknown node id %d", e.source)
		}
		to, ok := words[e.target]
		if !ok {
			return nil, fmt.Errorf("gml: edge references unknown node id %d", e.target)
		}
		if err := store.AddEdge(from, to, e.weight); err != nil {
			return nil, fmt.Errorf("gml: edge %s-%s: %w", from, to, err)
		}
	}
	return store, nil
}

// splitKeyValue divides a line into its key and raw value. A bare "]" comes
// back as the key with an empty value.
func splitKeyValue(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}

func applyNodeAttr(n *nodeBlock, key, value string) {
	switch key {
	case "id":
		if id, err := parseInt(value); err == nil {
			n.id = id
			n.hasID = true
		}
	case "label":
		n.word = parseString(value)
	case "pos":
		n.pos = parseString(value)
	case "definition":
		n.definition = parseString(value)
	}
}

func applyEdgeAttr(e *edgeBlock, key, value string) error {
	switch key {
	case "source":
		id, err := parseInt(value)
		if err != nil {
			return fmt.Errorf("edge source %q: %w", value, err)
		}
		e.source = id
		e.hasSource = true
	case "target":
		id, err := parseInt(value)
		if err != nil {
			return fmt.Errorf("edge target %q: %w", value, err)
		}
		e.target = id
		e.hasTarget = true
	case "weight":
		w, err := parseFloat(value)
		if err != nil {
			return fmt.Errorf("edge weight %q: %w", value, err)
		}
		e.weight = w
	}
	return nil
}

// parseString strips surrounding quotes when present and resolves entity
// escapes. Unquoted tokens pass through as-is.
func parseString(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return unescape(value)
}

// parseInt accepts both bare and quoted integers.
func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.Trim(value, `"`))
}

// parseFloat accepts both bare and quoted numbers.
func parseFloat(value string) (float64, error) {
	return strconv.ParseFloat(strings.Trim(value, `"`), 64)
}
