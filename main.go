package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/linedrawer/config"
)

func main() {
	settingsName := flag.String("config", config.DefaultSettingsFile, "settings file in config/ (embedded copy used when missing)")
	scriptName := flag.String("script", "", "probe script in config/scripts/ (overrides settings)")
	debug := flag.Bool("debug", false, "show overlay statistics")
	physics := flag.Bool("physics", true, "run the chipmunk demo space")
	watch := flag.Bool("watch", true, "hot reload settings and scripts from config/")
	flag.Parse()

	settings, err := config.LoadSettings(*settingsName)
	if err != nil {
		log.Fatal(err)
	}
	if *scriptName != "" {
		settings.Probes.Script = *scriptName
	}
	settings.Probes.Physics = settings.Probes.Physics && *physics

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)

	game := NewGame(*settingsName, settings, *debug, *watch)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
