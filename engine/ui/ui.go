package ui

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/tripod-arena/engine/core"
)

var (
	hudPanel  = color.RGBA{15, 15, 30, 200}
	hudBorder = color.RGBA{0, 140, 200, 255}
	hudRed    = color.RGBA{220, 50, 50, 255}
	hudGreen  = color.RGBA{50, 220, 80, 255}
	hudAmber  = color.RGBA{255, 200, 0, 255}
	hudDim    = color.RGBA{0, 0, 0, 160}
)

// HUD is the heads-up display. It implements core.UI: the simulation
// pushes state into it and Draw paints whatever was last pushed.
type HUD struct {
	ScreenW, ScreenH int
	TotalEnemies     int

	// State
	VehicleHP   map[int]float64
	EnemyHP     float64
	EnemyMaxHP  float64
	EnemyPanel  bool
	Score       int
	ActiveSlot  int
	ActiveKind  core.WeaponKind
	Paused      bool
	CannonAngle int
	Outcome     core.Outcome

	face text.Face
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:   sw,
		ScreenH:   sh,
		VehicleHP: make(map[int]float64),
		face:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// Reset clears match state before a restart
func (h *HUD) Reset() {
	h.VehicleHP = make(map[int]float64)
	h.EnemyHP, h.EnemyMaxHP, h.EnemyPanel = 0, 0, false
	h.Score = 0
	h.ActiveSlot, h.ActiveKind = 0, core.WeaponMachineGun
	h.Paused = false
	h.CannonAngle = 0
	h.Outcome = core.OutcomeNone
}

func (h *HUD) SetVehicleHealth(slot int, hp float64) { h.VehicleHP[slot] = hp }

func (h *HUD) SetEnemyHealth(hp, maxHP float64) {
	h.EnemyHP, h.EnemyMaxHP = hp, maxHP
	h.EnemyPanel = true
}

func (h *HUD) HideEnemyPanel() { h.EnemyPanel = false }
func (h *HUD) SetScore(n int)  { h.Score = n }

func (h *HUD) SetActiveVehicleLabel(slot int, kind core.WeaponKind) {
	h.ActiveSlot, h.ActiveKind = slot, kind
}

func (h *HUD) SetPauseIndicator(paused bool) { h.Paused = paused }
func (h *HUD) SetCannonAngleDisplay(deg int) { h.CannonAngle = deg }

// Only the first terminal screen sticks
func (h *HUD) ShowVictoryScreen() {
	if h.Outcome == core.OutcomeNone {
		h.Outcome = core.OutcomeVictory
	}
}

func (h *HUD) ShowDefeatScreen() {
	if h.Outcome == core.OutcomeNone {
		h.Outcome = core.OutcomeDefeat
	}
}

// ActiveLabel is the text of the controlled-vehicle indicator
func (h *HUD) ActiveLabel() string {
	if h.ActiveSlot == 0 {
		return "Active: none"
	}
	return fmt.Sprintf("Active: Vehicle %d (%s)", h.ActiveSlot, h.ActiveKind.Label())
}

// ScoreLabel is the text of the kill counter
func (h *HUD) ScoreLabel() string {
	if h.TotalEnemies > 0 {
		return fmt.Sprintf("Tripods destroyed: %d / %d", h.Score, h.TotalEnemies)
	}
	return fmt.Sprintf("Tripods destroyed: %d", h.Score)
}

// Draw renders the entire HUD
func (h *HUD) Draw(screen *ebiten.Image) {
	h.drawTopBar(screen)
	h.drawVehicles(screen)
	if h.EnemyPanel {
		h.drawEnemyPanel(screen)
	}
	if h.Paused && h.Outcome == core.OutcomeNone {
		h.drawBanner(screen, "PAUSED", hudAmber, "press P to resume")
	}
	switch h.Outcome {
	case core.OutcomeVictory:
		h.drawBanner(screen, "VICTORY", hudGreen, "all tripods destroyed - press R to play again")
	case core.OutcomeDefeat:
		h.drawBanner(screen, "DEFEAT", hudRed, "all vehicles lost - press R to try again")
	}
}

func (h *HUD) drawTopBar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), 30, hudDim, false)
	info := h.ScoreLabel() + " | " + h.ActiveLabel()
	if h.ActiveKind == core.WeaponCannon && h.ActiveSlot != 0 {
		info += fmt.Sprintf(" | Cannon angle: %d deg", h.CannonAngle)
	}
	ebitenutil.DebugPrintAt(screen, info, 10, 8)
	ebitenutil.DebugPrintAt(screen, "WASD move  Q/E aim  SPACE fire  1/2 select  P pause", 10, h.ScreenH-20)
}

func (h *HUD) drawVehicles(screen *ebiten.Image) {
	slots := make([]int, 0, len(h.VehicleHP))
	for s := range h.VehicleHP {
		slots = append(slots, s)
	}
	sort.Ints(slots)

	y := 40
	for _, s := range slots {
		hp := h.VehicleHP[s]
		label := fmt.Sprintf("Vehicle %d: %.0f", s, hp)
		if s == h.ActiveSlot {
			label = "> " + label
		}
		ebitenutil.DebugPrintAt(screen, label, 10, y)
		drawBar(screen, 150, float32(y+3), 120, hp/core.VehicleMaxHealth)
		y += 20
	}
}

func (h *HUD) drawEnemyPanel(screen *ebiten.Image) {
	pw := float32(220)
	px := float32(h.ScreenW) - pw - 10
	vector.DrawFilledRect(screen, px, 40, pw, 46, hudPanel, false)
	vector.StrokeRect(screen, px, 40, pw, 46, 1, hudBorder, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Tripod: %.0f / %.0f", h.EnemyHP, h.EnemyMaxHP), int(px)+10, 46)
	ratio := 0.0
	if h.EnemyMaxHP > 0 {
		ratio = h.EnemyHP / h.EnemyMaxHP
	}
	drawBar(screen, px+10, 66, pw-20, ratio)
}

func (h *HUD) drawBanner(screen *ebiten.Image, title string, clr color.RGBA, hint string) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.ScreenH), hudDim, false)

	cx := float64(h.ScreenW) / 2
	cy := float64(h.ScreenH) / 2
	panelW, panelH := float32(420), float32(140)
	px := float32(cx) - panelW/2
	py := float32(cy) - panelH/2
	vector.DrawFilledRect(screen, px, py, panelW, panelH, hudPanel, false)
	vector.StrokeRect(screen, px, py, panelW, panelH, 2, hudBorder, false)

	const scale = 4
	w, _ := text.Measure(title, h.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w*scale/2, float64(py)+20)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, title, h.face, op)

	ebitenutil.DebugPrintAt(screen, hint, int(cx)-len(hint)*3, int(py)+100)
}

func drawBar(screen *ebiten.Image, x, y, w float32, ratio float64) {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	vector.DrawFilledRect(screen, x, y, w, 8, color.RGBA{40, 40, 40, 200}, false)
	var c color.RGBA
	switch {
	case ratio > 0.6:
		c = hudGreen
	case ratio > 0.3:
		c = hudAmber
	default:
		c = hudRed
	}
	vector.DrawFilledRect(screen, x, y, w*float32(ratio), 8, c, false)
}
