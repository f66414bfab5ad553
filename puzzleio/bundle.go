// Package puzzleio reads and writes puzzle bundles: a single YAML file
// carrying a puzzle's structure lines and its vocabulary. Bundles are the
// project's fixture and batch-run format; plain structure and word-list
// files remain supported through the grid and lexicon packages.
package puzzleio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/David-Mais/crossfill/grid"
	"github.com/David-Mais/crossfill/lexicon"
)

// Bundle is the on-disk puzzle format.
type Bundle struct {
	Name      string   `yaml:"name,omitempty"`
	Structure []string `yaml:"structure"`
	Words     []string `yaml:"words"`
}

// Load reads and normalizes a bundle. The word list comes back
// uppercased, deduplicated and sorted.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bundle %s: %w", path, err)
	}
	if len(b.Structure) == 0 {
		return nil, fmt.Errorf("bundle %s has no structure", path)
	}
	if len(b.Words) == 0 {
		return nil, fmt.Errorf("bundle %s has no words", path)
	}
	b.Words = lexicon.Normalize(b.Words)
	return &b, nil
}

// Save writes a bundle as YAML.
func (b *Bundle) Save(path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Crossword builds the topology described by the bundle's structure.
func (b *Bundle) Crossword() (*grid.Crossword, error) {
	return grid.New(b.Structure)
}
