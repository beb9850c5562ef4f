// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// SavedSearch is the on-disk representation of a completed recall run.
// A run can be saved to a file and reloaded later without re-querying
// the API.
type SavedSearch struct {
	Query           SavedQuery   `yaml:"query"`
	RelatedConcepts []string     `yaml:"related_concepts,omitempty"`
	Results         []types.Item `yaml:"results"`
	Summary         SavedSummary `yaml:"summary"`
}

// SavedQuery stores the parameters that produced the results.
type SavedQuery struct {
	Keyword string `yaml:"keyword"`
	SortKey string `yaml:"sort_key,omitempty"`
	Order   string `yaml:"order,omitempty"`
}

// SavedSummary stores result statistics and a timestamp.
type SavedSummary struct {
	Total       int       `yaml:"total"`
	Approximate bool      `yaml:"approximate,omitempty"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteSavedSearch saves a recall run to a YAML file.
func WriteSavedSearch(path string, out types.RecallOutput, sortKey, order string) error {
	ss := SavedSearch{
		Query: SavedQuery{
			Keyword: out.Keyword,
			SortKey: sortKey,
			Order:   order,
		},
		RelatedConcepts: out.RelatedConcepts,
		Results:         out.Results,
		Summary: SavedSummary{
			Total:       out.TotalCount,
			Approximate: out.Approximate,
			Timestamp:   time.Now(),
		},
	}

	data, err := yaml.Marshal(&ss)
	if err != nil {
		return fmt.Errorf("marshaling saved search: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadSavedSearch loads a previously saved search from disk.
func ReadSavedSearch(path string) (*SavedSearch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading saved search: %w", err)
	}
	var ss SavedSearch
	if err := yaml.Unmarshal(data, &ss); err != nil {
		return nil, fmt.Errorf("parsing saved search: %w", err)
	}
	return &ss, nil
}

// ToOutput converts a saved search back into a RecallOutput.
func (ss *SavedSearch) ToOutput() types.RecallOutput {
	return types.RecallOutput{
		Keyword:         ss.Query.Keyword,
		RelatedConcepts: ss.RelatedConcepts,
		Results:         ss.Results,
		TotalCount:      len(ss.Results),
		Approximate:     ss.Summary.Approximate,
	}
}
