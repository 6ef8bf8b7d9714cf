package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/Goodgis/minif1/internal/race"
)

func TestResultLogAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.txt")
	require.NoError(t, os.WriteFile(path, []byte("Score: 1. Haas, #: 20, Qatar\n"), 0o644))

	l := NewResultLog(path)
	require.NoError(t, l.Record(race.Finished{Score: 42, Team: race.RedBull, Number: 1, Country: race.LasVegas}))
	require.NoError(t, l.Record(race.Finished{Score: 7, Team: race.AstonMartin, Number: 14, Country: race.Belgium}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Score: 1. Haas, #: 20, Qatar\n"+
			"Score: 42. Red Bull, #: 1, Las Vegas\n"+
			"Score: 7. Aston Martin, #: 14, Belgium\n",
		string(data))
}

func TestResultLogWriteFailure(t *testing.T) {
	l := NewResultLog(t.TempDir())
	assert.Error(t, l.Record(race.Finished{Score: 1}))
}

func TestParseResult(t *testing.T) {
	f, ok := ParseResult("Score: 42. Red Bull, #: 1, Las Vegas")
	require.True(t, ok)
	assert.Equal(t, race.Finished{Score: 42, Team: race.RedBull, Number: 1, Country: race.LasVegas}, f)

	f, ok = ParseResult("Score: 3. Ferrari, #: 16, Belguim")
	require.True(t, ok)
	assert.Equal(t, race.Belgium, f.Country)

	for _, bad := range []string{
		"",
		"garbage",
		"Score: x. Ferrari, #: 16, Italy",
		"Score: 3. Minardi, #: 16, Italy",
		"Score: 3. Ferrari, #: 16, Atlantis",
		"Score: 3. Ferrari, 16, Italy",
		"Score: -3. Ferrari, #: 16, Italy",
	} {
		_, ok := ParseResult(bad)
		assert.False(t, ok, bad)
	}
}

func TestReadResultsAndTop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.txt")
	data := "Score: 10. Ferrari, #: 16, Italy\n" +
		"broken line\n" +
		"Score: 30. Mercedes, #: 63, Japan\n" +
		"Score: 10. Alpine, #: 10, Miami\n" +
		"Score: 20. VRB, #: 22, COTA\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	results, err := ReadResults(path)
	require.NoError(t, err)
	require.Len(t, results, 4)

	top := Top(results, 3)
	require.Len(t, top, 3)
	assert.Equal(t, 30, top[0].Score)
	assert.Equal(t, 20, top[1].Score)
	assert.Equal(t, race.Ferrari, top[2].Team, "ties keep file order")

	assert.Len(t, Top(results, 10), 4)
	assert.Equal(t, 10, results[0].Score, "input is not reordered")
}

func TestReadResultsMissingFile(t *testing.T) {
	results, err := ReadResults(filepath.Join(t.TempDir(), "none.txt"))
	require.NoError(t, err)
	assert.Empty(t, results)
}
