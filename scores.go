package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gitlab.com/Goodgis/minif1/internal/store"
)

// printScores writes the n best recorded races, n < 0 meaning all of them.
func printScores(w io.Writer, path string, n int) error {
	results, err := store.ReadResults(path)
	if err != nil {
		return err
	}

	colorTitle.Fprintln(w, "*** Mini F1 Leaderboard ***")
	if len(results) == 0 {
		fmt.Fprintln(w, "No races recorded yet.")
		return nil
	}

	p := message.NewPrinter(language.English)
	for i, f := range store.Top(results, n) {
		p.Fprintf(w, "%2d. %7d  %s #%d (%s)\n", i+1, f.Score, f.Team, f.Number, f.Country)
	}
	p.Fprintf(w, "%d races recorded\n", len(results))
	return nil
}
