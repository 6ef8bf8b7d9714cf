package main

import (
	"errors"
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"

	"gitlab.com/Goodgis/minif1/internal/app"
	"gitlab.com/Goodgis/minif1/internal/assets"
	"gitlab.com/Goodgis/minif1/internal/race"
	"gitlab.com/Goodgis/minif1/internal/settings"
	"gitlab.com/Goodgis/minif1/internal/setup"
	"gitlab.com/Goodgis/minif1/internal/store"
	"gitlab.com/Goodgis/minif1/internal/tui"
)

func main() {
	configPath := flag.String("config", settings.DefaultPath, "settings file")
	useTUI := flag.Bool("tui", false, "race in the terminal instead of a window")
	showScores := flag.Bool("scores", false, "print the leaderboard and exit")
	top := flag.Int("top", 10, "number of results shown by -scores")
	guest := flag.Bool("guest", false, "skip the login prompt")
	flag.Parse()

	cfg, err := settings.Load(*configPath)
	if err != nil {
		log.Println("Error loading settings:", err)
	}

	if *showScores {
		if err := printScores(color.Output, cfg.Files.Scores, *top); err != nil {
			log.Fatal(err)
		}
		return
	}

	var driver string
	if !*guest {
		accounts, err := store.LoadAccounts(cfg.Files.Users)
		if err != nil {
			log.Println("Error loading accounts:", err)
		}
		driver, err = login(accounts, newConsolePrompter())
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			log.Fatal(err)
		}
	}

	seed := cfg.Race.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	form := setup.NewForm(cfg.Race.Team, cfg.Race.Number, cfg.Race.Country)
	results := store.NewResultLog(cfg.Files.Scores)

	if *useTUI {
		err := tui.Run(tui.Options{
			Form:     form,
			Recorder: results,
			Seed:     seed,
			Driver:   driver,
		})
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	runWindow(cfg, app.Options{
		Form:     form,
		Recorder: results,
		Seed:     seed,
		Driver:   driver,
	})
}

func runWindow(cfg *settings.Settings, opts app.Options) {
	ebiten.SetWindowSize(int(race.TrackWidth*cfg.Window.Scale), int(race.TrackHeight*cfg.Window.Scale))
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(race.TicksPerSecond)

	dir := cfg.Files.Assets
	opts.Images = assets.LoadImages(dir, append(race.Skins(), race.PowerUpSkin)...)
	opts.Faces = assets.LoadFaces(filepath.Join(dir, "font.ttf"))
	opts.Mixer = assets.NewMixer(dir, cfg.Audio.Enabled, cfg.Audio.Volume)

	if err := ebiten.RunGame(app.New(opts)); err != nil {
		log.Fatal(err)
	}
}
