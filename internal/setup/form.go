// Package setup is the pre-race customisation form shared by the window and
// terminal frontends.
package setup

import (
	"strconv"

	"gitlab.com/Goodgis/minif1/internal/race"
)

// Field is the row that has focus.
type Field int

const (
	FieldTeam Field = iota
	FieldNumber
	FieldCountry

	fieldCount // must stay last
)

func (f Field) String() string {
	switch f {
	case FieldTeam:
		return "Team"
	case FieldNumber:
		return "Number"
	case FieldCountry:
		return "Country"
	}
	return "Field(" + strconv.Itoa(int(f)) + ")"
}

const maxNumberDigits = 2

// Form holds the selections while the player edits them. The number is kept
// as typed and only parsed by Config.
type Form struct {
	Focus   Field
	Team    race.Team
	Number  string
	Country race.Country
}

// NewForm starts from the given defaults. Unknown names fall back to the
// first entry of each list.
func NewForm(team string, number int, country string) *Form {
	t, _ := race.ParseTeam(team)
	c, _ := race.ParseCountry(country)
	return &Form{
		Team:    t,
		Number:  strconv.Itoa(race.NewConfig(t, number, c).Number),
		Country: c,
	}
}

func (f *Form) NextField() { f.Focus = (f.Focus + 1) % fieldCount }
func (f *Form) PrevField() { f.Focus = (f.Focus + fieldCount - 1) % fieldCount }

// Cycle moves the focused list selection by delta, wrapping around. On the
// number row it steps the number instead.
func (f *Form) Cycle(delta int) {
	switch f.Focus {
	case FieldTeam:
		f.Team = race.Team(wrap(int(f.Team)+delta, len(race.Teams())))
	case FieldCountry:
		f.Country = race.Country(wrap(int(f.Country)+delta, len(race.Countries())))
	case FieldNumber:
		n := race.ParseDriverNumber(f.Number) + delta
		f.Number = strconv.Itoa(wrap(n, race.MaxDriverNumber+1))
	}
}

// Type appends a typed character to the number. Anything but a digit, or a
// third digit, is ignored.
func (f *Form) Type(r rune) {
	if f.Focus != FieldNumber || r < '0' || r > '9' {
		return
	}
	if len(f.Number) >= maxNumberDigits {
		return
	}
	if f.Number == "0" {
		f.Number = ""
	}
	f.Number += string(r)
}

// Backspace removes the last digit of the number.
func (f *Form) Backspace() {
	if f.Focus != FieldNumber || f.Number == "" {
		return
	}
	f.Number = f.Number[:len(f.Number)-1]
}

// Value is the display text of a row.
func (f *Form) Value(field Field) string {
	switch field {
	case FieldTeam:
		return f.Team.String()
	case FieldNumber:
		return f.Number
	case FieldCountry:
		return f.Country.String()
	}
	return ""
}

// Fields lists the rows in display order.
func Fields() []Field { return []Field{FieldTeam, FieldNumber, FieldCountry} }

// Config is the race configuration the form currently describes.
func (f *Form) Config() race.Config {
	return race.NewConfig(f.Team, race.ParseDriverNumber(f.Number), f.Country)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
