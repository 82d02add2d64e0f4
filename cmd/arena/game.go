package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/1siamBot/tripod-arena/engine/config"
	"github.com/1siamBot/tripod-arena/engine/core"
	"github.com/1siamBot/tripod-arena/engine/input"
	"github.com/1siamBot/tripod-arena/engine/render3d"
	"github.com/1siamBot/tripod-arena/engine/sim"
	"github.com/1siamBot/tripod-arena/engine/ui"
)

// Game implements ebiten.Game interface
type Game struct {
	cfg      *config.Config
	log      zerolog.Logger
	sound    core.Sound
	renderer *render3d.Renderer3D
	scene    *render3d.Scene
	hud      *ui.HUD
	input    *input.InputState

	sim      *sim.Simulation
	gameLoop *core.GameLoop
}

func NewGame(cfg *config.Config, sound core.Sound, log zerolog.Logger) *Game {
	w, h := cfg.Window.Width, cfg.Window.Height
	in := input.NewInputState()
	in.Width, in.Height = w, h
	g := &Game{
		cfg:      cfg,
		log:      log,
		sound:    sound,
		renderer: render3d.NewRenderer3D(w, h),
		scene:    render3d.NewScene(),
		hud:      ui.NewHUD(w, h),
		input:    in,
	}
	g.newMatch()
	return g
}

// newMatch throws away the current match, if any, and starts a fresh one
func (g *Game) newMatch() {
	g.scene.Reset()
	g.hud.Reset()
	g.renderer.Particles.Particles = nil

	g.sim = sim.New(sim.Options{
		Seed:             g.cfg.Sim.Seed,
		EnemyCount:       g.cfg.Sim.EnemyCount,
		RecognitionRange: g.cfg.Enemy.RecognitionRange,
		HeatRayRange:     g.cfg.Enemy.HeatRayRange,
	}, sim.Collaborators{
		UI:      g.hud,
		Visuals: g.scene,
		Sound:   g.sound,
		Camera:  g.renderer,
	}, core.RealClock{}, g.log)
	g.hud.TotalEnemies = g.sim.World.TotalEnemies

	g.sim.Bus.On(core.EvtProjectileFired, g.onFired)
	g.sim.Bus.On(core.EvtEnemyDestroyed, g.onEnemyDestroyed)
	g.sim.Bus.On(core.EvtVehicleDestroyed, g.onVehicleDestroyed)

	g.gameLoop = core.NewGameLoop(g.sim, core.RealClock{})
	g.gameLoop.MaxFrameDelta = g.cfg.Sim.MaxFrameDelta
}

func (g *Game) onFired(e core.Event) {
	if p, ok := g.sim.World.Projectile(e.Entity); ok {
		g.renderer.Particles.AddMuzzleFlash(p.Pos)
	}
}

func (g *Game) onEnemyDestroyed(e core.Event) {
	if en, ok := g.sim.World.Enemy(e.Entity); ok {
		g.renderer.Particles.AddExplosion(en.BodyCenter())
	}
}

func (g *Game) onVehicleDestroyed(e core.Event) {
	if v, ok := g.sim.World.Vehicle(e.Entity); ok {
		g.renderer.Particles.AddExplosion(v.Pos)
	}
}

func (g *Game) Update() error {
	c := g.input.Poll()
	if c.RestartPressed {
		g.log.Info().Str("match", g.sim.ID.String()).Msg("restart requested")
		g.newMatch()
		return nil
	}

	g.sim.SetControls(c)
	dt := g.gameLoop.Update()
	g.renderer.Update(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawScene(screen, g.sim.World, g.scene)
	g.hud.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.renderer.Camera.Resize(outsideWidth, outsideHeight)
	g.hud.ScreenW, g.hud.ScreenH = outsideWidth, outsideHeight
	g.input.Width, g.input.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
