package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintScores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.txt")
	require.NoError(t, os.WriteFile(path, []byte(
		"Score: 12. Haas, #: 20, Qatar\n"+
			"Score: 1234. Red Bull, #: 1, Las Vegas\n"+
			"not a result\n"+
			"Score: 40. Ferrari, #: 16, Italy\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, printScores(&out, path, 2))

	text := out.String()
	assert.Contains(t, text, "Leaderboard")
	assert.Contains(t, text, "1,234")
	assert.Contains(t, text, "Red Bull #1 (Las Vegas)")
	assert.Contains(t, text, "Ferrari #16 (Italy)")
	assert.NotContains(t, text, "Haas")
	assert.Less(t, strings.Index(text, "Red Bull"), strings.Index(text, "Ferrari"))
	assert.Contains(t, text, "3 races recorded")
}

func TestPrintScoresEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printScores(&out, filepath.Join(t.TempDir(), "missing.txt"), 10))
	assert.Contains(t, out.String(), "No races recorded yet.")
}
