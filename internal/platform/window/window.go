// Package window provides the desktop frame driver for GB11 on top of
// ebiten. The framebuffer is uploaded unscaled and ebiten enlarges it.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten"

	"github.com/vovakirdan/gb11/internal/core"
	"github.com/vovakirdan/gb11/internal/game"
)

// DefaultScale is the window enlargement used when none is given.
const DefaultScale = 4

// errQuit ends the ebiten loop when the player closes the game.
var errQuit = errors.New("quit")

// keyBindings maps keyboard keys to pad buttons. Several keys may feed
// the same button.
var keyBindings = []struct {
	key    ebiten.Key
	button core.Button
}{
	{ebiten.KeyUp, core.ButtonUp},
	{ebiten.KeyW, core.ButtonUp},
	{ebiten.KeyLeft, core.ButtonLeft},
	{ebiten.KeyA, core.ButtonLeft},
	{ebiten.KeyRight, core.ButtonRight},
	{ebiten.KeyD, core.ButtonRight},
	{ebiten.KeyDown, core.ButtonDown},
	{ebiten.KeyS, core.ButtonDown},
	{ebiten.KeyZ, core.ButtonA},
	{ebiten.KeyX, core.ButtonB},
	{ebiten.KeyEnter, core.ButtonStart},
	{ebiten.KeySpace, core.ButtonStart},
	{ebiten.KeyShift, core.ButtonSelect},
	{ebiten.KeyTab, core.ButtonSelect},
}

// Driver runs a game in a desktop window.
type Driver struct {
	game   *game.Game
	screen *core.Screen
	config core.RuntimeConfig
	scale  float64
	log    *log.Logger

	latch core.Latch
	pix   []byte
}

// New creates a window driver. A non-positive scale uses DefaultScale and
// a nil logger discards all output.
func New(g *game.Game, screen *core.Screen, cfg core.RuntimeConfig, scale float64, logger *log.Logger) *Driver {
	if scale <= 0 {
		scale = DefaultScale
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{
		game:   g,
		screen: screen,
		config: cfg,
		scale:  scale,
		log:    logger,
	}
}

// poll rebuilds the current button state from the keyboard.
func (d *Driver) poll() {
	var held core.Buttons
	for _, b := range keyBindings {
		if ebiten.IsKeyPressed(b.key) {
			held |= core.Buttons(b.button)
		}
	}
	d.latch.Set(held)
}

// update is called by ebiten once per tick: poll, update, draw, upload,
// then rotate the latch.
func (d *Driver) update(screen *ebiten.Image) error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}

	d.poll()
	d.game.Update(d.config.ClampDT(1/float32(d.config.TickRate)), &d.latch)
	defer d.latch.Rotate()

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	d.game.Draw(d.screen)
	d.pix = d.screen.RGBA(d.pix)
	return screen.ReplacePixels(d.pix)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func (d *Driver) Run() error {
	if d.config.TickRate <= 0 {
		d.config.TickRate = 60
	}
	ebiten.SetMaxTPS(d.config.TickRate)

	d.log.Info("window opened", "scale", d.scale, "tps", d.config.TickRate)
	err := ebiten.Run(d.update, d.screen.Width(), d.screen.Height(), d.scale, "GB11")
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}
