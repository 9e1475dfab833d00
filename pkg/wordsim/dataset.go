// Package wordsim scores a built word graph against the WordSim-353 human
// similarity judgments and reports rank correlation.
package wordsim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Pair is one human-scored word pair from the dataset. Human scores run
// from 0 (unrelated) to 10 (identical meaning).
type Pair struct {
	Word1 string
	Word2 string
	Human float64
}

// LoadDataset reads the CSV form of the dataset: a header row followed by
// word1,word2,score rows. Words are lowercased on load so they line up with
// normalized graph nodes.
func LoadDataset(r io.Reader) ([]Pair, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("wordsim: parse csv: %w", err)
	}
	var pairs []Pair
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("wordsim: row %d has %d fields, want 3", i+1, len(row))
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}
			return nil, fmt.Errorf("wordsim: row %d score %q: %w", i+1, row[2], err)
		}
		pairs = append(pairs, Pair{
			Word1: strings.ToLower(strings.TrimSpace(row[0])),
			Word2: strings.ToLower(strings.TrimSpace(row[1])),
			Human: score,
		})
	}
	return pairs, nil
}

// LoadDatasetFile is LoadDataset over a file on disk.
func LoadDatasetFile(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordsim: open dataset: %w", err)
	}
	defer f.Close()
	return LoadDataset(f)
}
