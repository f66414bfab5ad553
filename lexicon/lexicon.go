// Package lexicon loads and filters the vocabulary a puzzle is filled
// from. Words are normalized to upper case and deduplicated; the returned
// lists are sorted so downstream iteration order is reproducible.
//
// Words are ASCII. Slot lengths, overlap offsets and crossing-letter
// comparisons all index words bytewise, so a multi-byte rune would
// mis-align the offsets; word lists with letters outside A-Z are not
// supported.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Load reads a word list, one word per line. Blank lines are skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		words = append(words, strings.ToUpper(w))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	words = Normalize(words)
	log.Debug().Str("path", path).Int("words", len(words)).Msg("loaded word list")
	return words, nil
}

// Normalize uppercases, deduplicates and sorts a word list.
func Normalize(words []string) []string {
	upper := lo.Map(words, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	upper = lo.Filter(upper, func(w string, _ int) bool { return w != "" })
	upper = lo.Uniq(upper)
	sort.Strings(upper)
	return upper
}

// FilterLengths keeps only words whose length appears in wanted. The
// solver's node-consistency pass would drop the rest anyway; filtering up
// front keeps the initial domains small.
func FilterLengths(words []string, wanted map[int]bool) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		return wanted[len(w)]
	})
}
