// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/Hashim125/ayah-a-day/pkg/types"
)

// ResultsFile is the on-disk representation of a search and its results.
// A search can be saved to a file and reloaded later without rebuilding
// the query.
type ResultsFile struct {
	Query   QueryParams          `yaml:"query"`
	Results []types.SearchResult `yaml:"results"`
	Summary ResultsSummary       `yaml:"summary"`
}

// QueryParams stores the query in a serializable form.
type QueryParams struct {
	Text   string   `yaml:"text"`
	Fields []string `yaml:"fields,omitempty"`
	Limit  int      `yaml:"limit,omitempty"`
}

// ResultsSummary stores result statistics and a timestamp.
type ResultsSummary struct {
	Total   int       `yaml:"total"`
	SavedAt time.Time `yaml:"saved_at"`
}

// WriteResultsFile saves the query and its results to a YAML file.
func WriteResultsFile(path string, q Query, results []types.SearchResult) error {
	rf := ResultsFile{
		Query: QueryParams{
			Text:  q.Text,
			Limit: q.Limit,
		},
		Results: results,
		Summary: ResultsSummary{
			Total:   len(results),
			SavedAt: time.Now(),
		},
	}
	for _, f := range q.Fields {
		rf.Query.Fields = append(rf.Query.Fields, string(f))
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultsFile loads a previously saved results file from disk.
func ReadResultsFile(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file: %w", err)
	}
	return &rf, nil
}

// ToQuery converts stored QueryParams back into a Query.
func (p QueryParams) ToQuery() (Query, error) {
	fields, err := types.ParseFields(p.Fields)
	if err != nil {
		return Query{}, err
	}
	return Query{Text: p.Text, Fields: fields, Limit: p.Limit}, nil
}
