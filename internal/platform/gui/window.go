// Package gui runs Skyfall in a desktop window with ebiten.
// Unlike the terminal host it sees real key-up events, so held input is exact.
package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/games/skyfall"
	"github.com/vovakirdan/skyfall/internal/storage"
)

var sky = color.RGBA{0x1d, 0x2b, 0x53, 0xff}

// rgba maps terminal colours to window colours.
var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xdd, 0xdd, 0xdd, 0xff},
	core.ColorRed:           {0xaa, 0x22, 0x22, 0xff},
	core.ColorGreen:         {0x3c, 0x9a, 0x3c, 0xff},
	core.ColorYellow:        {0xd4, 0xa0, 0x17, 0xff},
	core.ColorBlue:          {0x2a, 0x4f, 0xb8, 0xff},
	core.ColorMagenta:       {0xa0, 0x2f, 0xa0, 0xff},
	core.ColorCyan:          {0x2a, 0xa1, 0xb3, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xff, 0x4d, 0x4d, 0xff},
	core.ColorBrightGreen:   {0x6b, 0xe0, 0x6b, 0xff},
	core.ColorBrightYellow:  {0xff, 0xe0, 0x4d, 0xff},
	core.ColorBrightBlue:    {0x5c, 0x8d, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x66, 0xff, 0xff},
	core.ColorBrightCyan:    {0x66, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x8c, 0x1a, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// RGBA returns the window colour for c.
func RGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorDefault]
}

// binding ties keys to an action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}},
}

// readInput builds a frame from key state. held reports level state and
// pressed reports keys that went down this frame.
func readInput(held, pressed func(ebiten.Key) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if held(k) {
				frame.SetHeld(b.action)
			}
			if pressed(k) {
				frame.Set(b.action)
			}
		}
	}
	return frame
}

// Window implements ebiten.Game around a skyfall.Game.
type Window struct {
	game    *skyfall.Game
	store   *storage.Store
	variant string
	logger  *log.Logger
	face    *text.GoTextFace
	saved   int
}

// New prepares a window for game. The game must already be Reset.
func New(game *skyfall.Game, store *storage.Store, variant string, logger *log.Logger) (*Window, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gui: cannot load font: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Window{
		game:    game,
		store:   store,
		variant: variant,
		logger:  logger,
		face:    &text.GoTextFace{Source: src, Size: 20},
	}, nil
}

// Update steps the game once per ebiten tick.
func (w *Window) Update() error {
	frame := readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
	if frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := w.game.Step(frame)
	if sum := result.RoundEnded; sum != nil {
		w.saveRound(*sum)
	}
	return nil
}

func (w *Window) saveRound(sum core.RoundSummary) {
	if w.store == nil || sum.Score <= 0 {
		return
	}
	if _, err := w.store.SaveRound(storage.RecordFromSummary(w.variant, sum)); err != nil {
		w.logger.Error("could not save round", "round", sum.RoundID, "err", err)
		return
	}
	w.saved++
}

// Draw paints the snapshot in world coordinates.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(sky)

	snap := w.game.Snapshot()
	for _, s := range snap.Sprites {
		vector.DrawFilledRect(screen,
			float32(s.X-s.W/2), float32(s.Y-s.H/2), float32(s.W), float32(s.H),
			RGBA(s.Color), false)
	}

	w.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), 16, 16, text.AlignStart)
	status := fmt.Sprintf("Round %d  Bullets %d/%d", snap.Round, snap.BulletsFree, snap.BulletsCap)
	if snap.Multiplier != 1 {
		status += fmt.Sprintf("  x%.2g", snap.Multiplier)
	}
	w.drawText(screen, status, 16, 44, text.AlignStart)

	if snap.Paused {
		cx := snap.WorldW / 2
		w.drawText(screen, "PAUSED", cx, snap.WorldH/2-20, text.AlignCenter)
		w.drawText(screen, "Press P to resume", cx, snap.WorldH/2+20, text.AlignCenter)
	}
}

func (w *Window) drawText(screen *ebiten.Image, msg string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.PrimaryAlign = align
	text.Draw(screen, msg, w.face, op)
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return int(cfg.World.Width), int(cfg.World.Height)
}

// Saved returns how many rounds this window has persisted.
func (w *Window) Saved() int {
	return w.saved
}

// Run opens the window and blocks until it is closed.
// tickRate must match the rate the game was Reset with.
func Run(w *Window, tickRate int, scale float64) error {
	cfg := w.game.Config()
	if scale <= 0 {
		scale = 0.6
	}
	ebiten.SetWindowTitle(w.game.Title())
	ebiten.SetWindowSize(int(cfg.World.Width*scale), int(cfg.World.Height*scale))
	ebiten.SetTPS(tickRate)

	err := ebiten.RunGame(w)
	w.logger.Info("window closed", "rounds_saved", w.saved)
	return err
}
