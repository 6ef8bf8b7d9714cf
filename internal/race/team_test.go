package race

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueSizes(t *testing.T) {
	assert.Len(t, Teams(), 11)
	assert.Len(t, Countries(), 9)
	assert.Len(t, Skins(), 11)
}

func TestParseTeam(t *testing.T) {
	for _, team := range Teams() {
		got, ok := ParseTeam(team.String())
		require.True(t, ok, team.String())
		assert.Equal(t, team, got)
	}

	got, ok := ParseTeam("  red bull ")
	assert.True(t, ok)
	assert.Equal(t, RedBull, got)

	_, ok = ParseTeam("Minardi")
	assert.False(t, ok)
}

func TestTeamSkin(t *testing.T) {
	assert.Equal(t, "f1_car_RedBull.png", RedBull.Skin())
	assert.Equal(t, "f1_car_Mclaren.png", McLaren.Skin())
	assert.Equal(t, "f1_car_Ferrari.png", Team(42).Skin())
}

func TestParseCountry(t *testing.T) {
	got, ok := ParseCountry("Las Vegas")
	assert.True(t, ok)
	assert.Equal(t, LasVegas, got)

	got, ok = ParseCountry("Belguim")
	assert.True(t, ok)
	assert.Equal(t, Belgium, got)

	_, ok = ParseCountry("Narnia")
	assert.False(t, ok)
}

func TestCountryColors(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x29, G: 0xC2, B: 0x53, A: 0xFF}, Italy.EdgeColor())
	assert.Equal(t, color.RGBA{R: 0xEB, G: 0x21, B: 0x17, A: 0xFF}, Italy.BarrierColor())
	assert.Equal(t, color.RGBA{R: 0x25, G: 0x25, B: 0xCF, A: 0xFF}, COTA.BarrierColor())
	assert.Equal(t, fallbackColor, Country(-1).EdgeColor())
}

func TestParseDriverNumber(t *testing.T) {
	tests := map[string]int{
		"16":   16,
		" 44 ": 44,
		"0":    0,
		"99":   99,
		"100":  99,
		"-3":   0,
		"abc":  0,
		"":     0,
		"1.5":  0,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseDriverNumber(in), "input %q", in)
	}
}

func TestNewConfigClampsNumber(t *testing.T) {
	assert.Equal(t, 99, NewConfig(Haas, 150, Miami).Number)
	assert.Equal(t, 0, NewConfig(Haas, -1, Miami).Number)
	assert.Equal(t, 20, NewConfig(Haas, 20, Miami).Number)
}

func TestSkinColor(t *testing.T) {
	assert.Equal(t, RedBull.Color(), SkinColor(RedBull.Skin()))
	assert.Equal(t, powerUpColor, SkinColor(PowerUpSkin))
	assert.Equal(t, Ferrari.Color(), Team(-5).Color())
}
