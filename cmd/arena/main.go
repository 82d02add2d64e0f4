package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/1siamBot/tripod-arena/engine/audio"
	"github.com/1siamBot/tripod-arena/engine/config"
	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/logging"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a config file (yaml, toml or json)")
	seed := pflag.Int64("seed", 0, "match seed, 0 for random")
	logLevel := pflag.String("log-level", "", "override the configured log level")
	mute := pflag.Bool("mute", false, "disable sound")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if pflag.CommandLine.Changed("seed") {
		cfg.Sim.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	var extra []io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		extra = append(extra, f)
	}
	log := logging.Setup(cfg.LogLevel, os.Stderr, extra...)

	sound := newSound(cfg, log)
	if sm, ok := sound.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	game := NewGame(cfg, sound, log)
	if err := ebiten.RunGame(game); err != nil {
		log.Error().Err(err).Msg("game exited with error")
		os.Exit(1)
	}
}

// newSound falls back to silence when the device cannot be opened
func newSound(cfg *config.Config, log zerolog.Logger) core.Sound {
	if !cfg.Audio.Enabled {
		return core.NopSound{}
	}
	sm := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sm.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		return core.NopSound{}
	}
	return sm
}
