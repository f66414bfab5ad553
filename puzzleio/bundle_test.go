package puzzleio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `name: tiny cross
structure:
  - "___"
  - "#_#"
  - "#_#"
words:
  - cat
  - car
  - art
  - cat
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tiny cross", b.Name)
	assert.Equal(t, []string{"ART", "CAR", "CAT"}, b.Words)

	cw, err := b.Crossword()
	require.NoError(t, err)
	assert.Len(t, cw.Slots(), 2)
}

func TestLoadRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()

	noWords := filepath.Join(dir, "nowords.yaml")
	require.NoError(t, os.WriteFile(noWords, []byte("structure: [\"___\"]\n"), 0644))
	_, err := Load(noWords)
	assert.Error(t, err)

	noStructure := filepath.Join(dir, "nostructure.yaml")
	require.NoError(t, os.WriteFile(noStructure, []byte("words: [cat]\n"), 0644))
	_, err = Load(noStructure)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	b := &Bundle{Name: "saved", Structure: []string{"___", "#_#", "#_#"}, Words: []string{"ART", "CAR", "CAT"}}
	require.NoError(t, b.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, b, got)
}
