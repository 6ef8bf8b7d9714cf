package race

import "fmt"

// Finished is emitted once when a race ends in a crash.
type Finished struct {
	Score   int
	Team    Team
	Number  int
	Country Country
}

// String is the line format of the score file.
func (f Finished) String() string {
	return fmt.Sprintf("Score: %d. %s, #: %d, %s", f.Score, f.Team, f.Number, f.Country)
}

// Recorder persists finished races. Errors are logged by the race and never
// change its state.
type Recorder interface {
	Record(Finished) error
}
