package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"gitlab.com/Goodgis/minif1/internal/race"
)

// ResultLog appends one line per finished race. It implements race.Recorder.
type ResultLog struct {
	path string
}

func NewResultLog(path string) *ResultLog {
	return &ResultLog{path: path}
}

func (l *ResultLog) Path() string { return l.path }

func (l *ResultLog) Record(f race.Finished) error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	if _, err := fmt.Fprintln(file, f.String()); err != nil {
		file.Close()
		return fmt.Errorf("write results: %w", err)
	}
	return file.Close()
}

// ReadResults loads every well-formed line of a result file. A missing file
// has no results.
func ReadResults(path string) ([]race.Finished, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open results: %w", err)
	}
	defer file.Close()

	var out []race.Finished
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		if f, ok := ParseResult(sc.Text()); ok {
			out = append(out, f)
		}
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("read results: %w", err)
	}
	return out, nil
}

// ParseResult reverses race.Finished.String.
func ParseResult(line string) (race.Finished, bool) {
	var f race.Finished

	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Score: ")
	if !ok {
		return f, false
	}
	score, rest, ok := strings.Cut(rest, ". ")
	if !ok {
		return f, false
	}
	team, rest, ok := strings.Cut(rest, ", #: ")
	if !ok {
		return f, false
	}
	number, country, ok := strings.Cut(rest, ", ")
	if !ok {
		return f, false
	}

	var err error
	if f.Score, err = strconv.Atoi(score); err != nil || f.Score < 0 {
		return f, false
	}
	if f.Number, err = strconv.Atoi(number); err != nil {
		return f, false
	}
	if f.Team, ok = race.ParseTeam(team); !ok {
		return f, false
	}
	if f.Country, ok = race.ParseCountry(country); !ok {
		return f, false
	}
	return f, true
}

// Top returns the n best results, highest score first. Equal scores keep
// file order.
func Top(results []race.Finished, n int) []race.Finished {
	sorted := append([]race.Finished(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
