package race

import (
	"image/color"
	"strconv"
	"strings"
)

// Team selects the player's livery.
type Team int

const (
	Ferrari Team = iota
	Mercedes
	RedBull
	McLaren
	AstonMartin
	Alpine
	Williams
	VRB
	Audi
	Haas
	Cadillac

	teamCount // must stay last
)

var teamNames = [teamCount]string{
	"Ferrari", "Mercedes", "Red Bull", "McLaren", "Aston Martin",
	"Alpine", "Williams", "VRB", "Audi", "Haas", "Cadillac",
}

// Skins double as obstacle skins, so the order matters for spawning.
var teamSkins = [teamCount]string{
	"f1_car_Ferrari.png",
	"f1_car_Mercedes.png",
	"f1_car_RedBull.png",
	"f1_car_Mclaren.png",
	"f1_car_AstonMartin.png",
	"f1_car_Alpine.png",
	"f1_car_Williams.png",
	"f1_car_VRB.png",
	"f1_car_Audi.png",
	"f1_car_Haas.png",
	"f1_car_Cadillac.png",
}

// PowerUpSkin is the asset name drawn for every power-up.
const PowerUpSkin = "Power_up.png"

// Livery colors, used when a skin image is not available.
var teamColors = [teamCount]color.RGBA{
	rgb(220, 0, 0),
	rgb(0, 210, 190),
	rgb(30, 65, 255),
	rgb(255, 135, 0),
	rgb(0, 110, 80),
	rgb(255, 135, 188),
	rgb(0, 90, 255),
	rgb(100, 145, 255),
	rgb(180, 180, 180),
	rgb(240, 240, 240),
	rgb(40, 40, 40),
}

var powerUpColor = rgb(255, 200, 0)

// Teams lists every selectable team in menu order.
func Teams() []Team {
	out := make([]Team, teamCount)
	for i := range out {
		out[i] = Team(i)
	}
	return out
}

func (t Team) valid() bool { return t >= 0 && t < teamCount }

func (t Team) String() string {
	if !t.valid() {
		return "Team(" + strconv.Itoa(int(t)) + ")"
	}
	return teamNames[t]
}

// Skin returns the car image name for the team. Unknown teams get the
// Ferrari livery.
func (t Team) Skin() string {
	if !t.valid() {
		return teamSkins[Ferrari]
	}
	return teamSkins[t]
}

// Color is the team's livery color.
func (t Team) Color() color.RGBA {
	if !t.valid() {
		return teamColors[Ferrari]
	}
	return teamColors[t]
}

// SkinColor is a flat color standing in for the named skin.
func SkinColor(skin string) color.RGBA {
	for i, s := range teamSkins {
		if s == skin {
			return teamColors[i]
		}
	}
	return powerUpColor
}

// ParseTeam matches a team by display name, ignoring case and surrounding space.
func ParseTeam(s string) (Team, bool) {
	s = strings.TrimSpace(s)
	for i, name := range teamNames {
		if strings.EqualFold(s, name) {
			return Team(i), true
		}
	}
	return Ferrari, false
}

// Skins returns the car skins obstacles are drawn from.
func Skins() []string {
	return append([]string(nil), teamSkins[:]...)
}

// Country selects the circuit and its colors.
type Country int

const (
	Italy Country = iota
	Japan
	Brazil
	Qatar
	LasVegas
	Miami
	Monaco
	COTA
	Belgium

	countryCount // must stay last
)

type circuit struct {
	name    string
	edge    color.RGBA
	barrier color.RGBA
}

var circuits = [countryCount]circuit{
	{"Italy", rgb(0x29, 0xC2, 0x53), rgb(0xEB, 0x21, 0x17)},
	{"Japan", rgb(0xE2, 0xA1, 0xE3), rgb(0x23, 0x9E, 0x29)},
	{"Brazil", rgb(0x00, 0x9B, 0x3A), rgb(0xF5, 0xFC, 0x17)},
	{"Qatar", rgb(0xBD, 0x8C, 0x28), rgb(0x99, 0x09, 0x09)},
	{"Las Vegas", rgb(0x00, 0x00, 0x00), rgb(0xC7, 0xC7, 0xC7)},
	{"Miami", rgb(0x5A, 0xC2, 0xAD), rgb(0xFC, 0x4C, 0x02)},
	{"Monaco", rgb(0x4D, 0x8A, 0xB8), rgb(0x54, 0x52, 0x52)},
	{"COTA", rgb(0xF0, 0x2E, 0x26), rgb(0x25, 0x25, 0xCF)},
	{"Belgium", rgb(0xFF, 0xF2, 0x00), rgb(0xF0, 0x16, 0x16)},
}

var fallbackColor = rgb(0x00, 0xFF, 0x00)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// Countries lists every circuit in menu order.
func Countries() []Country {
	out := make([]Country, countryCount)
	for i := range out {
		out[i] = Country(i)
	}
	return out
}

func (c Country) valid() bool { return c >= 0 && c < countryCount }

func (c Country) String() string {
	if !c.valid() {
		return "Country(" + strconv.Itoa(int(c)) + ")"
	}
	return circuits[c].name
}

// EdgeColor is the grass color beside the kerbs.
func (c Country) EdgeColor() color.RGBA {
	if !c.valid() {
		return fallbackColor
	}
	return circuits[c].edge
}

// BarrierColor is the kerb color.
func (c Country) BarrierColor() color.RGBA {
	if !c.valid() {
		return fallbackColor
	}
	return circuits[c].barrier
}

// ParseCountry matches a circuit by name. Old score files spell Belgium
// "Belguim", so that is accepted too.
func ParseCountry(s string) (Country, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "Belguim") {
		return Belgium, true
	}
	for i, c := range circuits {
		if strings.EqualFold(s, c.name) {
			return Country(i), true
		}
	}
	return Italy, false
}

// Driver number bounds.
const (
	MinDriverNumber = 0
	MaxDriverNumber = 99
)

// Config is what the player picks before a race. It does not change while
// the race runs.
type Config struct {
	Team    Team
	Number  int
	Country Country
}

// NewConfig clamps the driver number into range.
func NewConfig(team Team, number int, country Country) Config {
	return Config{
		Team:    team,
		Number:  clamp(number, MinDriverNumber, MaxDriverNumber),
		Country: country,
	}
}

// ParseDriverNumber reads a driver number typed by the player. Anything that
// is not an integer becomes 0; out of range values are clamped.
func ParseDriverNumber(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return clamp(n, MinDriverNumber, MaxDriverNumber)
}
