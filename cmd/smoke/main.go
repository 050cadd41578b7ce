// Command smoke shows the smoke effect in a window.
//
// Press Escape or close the window to quit. The caption shows the average
// frame rate over the last 200 frames and the live particle count.
package main

import (
	"errors"
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/smoke"
	"github.com/gogpu/smoke/internal/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/images"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func main() {
	var (
		width  = flag.Int("width", 750, "window width")
		height = flag.Int("height", 650, "window height")
		x      = flag.Float64("x", 375, "emission point x")
		y      = flag.Float64("y", 475, "emission point y")
		tps    = flag.Int("tps", 0, "simulation ticks per second; 0 ticks once per frame")
		vsync  = flag.Bool("vsync", true, "wait for vertical sync")
		sprite = flag.String("sprite", "", "smoke sprite (PNG/JPEG); bundled sprite if empty")
		seed   = flag.Uint64("seed", 0, "random seed; 0 seeds from the clock")
		interp = flag.String("interp", "bilinear", "resampling: nearest, bilinear, bicubic")
		debug  = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *debug {
		smoke.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	base, err := loadSprite(*sprite)
	if err != nil {
		log.Fatalf("smoke: %v", err)
	}
	mode, err := smoke.ParseInterpolation(*interp)
	if err != nil {
		log.Fatalf("smoke: %v", err)
	}
	sc, err := smoke.NewScaleCache(base, smoke.WithInterpolation(mode))
	if err != nil {
		log.Fatalf("smoke: %v", err)
	}

	var opts []smoke.EmitterOption
	if *seed != 0 {
		opts = append(opts, smoke.WithSeed(*seed))
	}

	g := newGame(smoke.NewEmitter(sc, *x, *y, opts...), *width, *height)

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(hud.Caption(0, 0))
	ebiten.SetVsyncEnabled(*vsync)
	if *tps > 0 {
		ebiten.SetTPS(*tps)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("smoke: %v", err)
	}
}

func loadSprite(path string) (*smoke.ImageBuf, error) {
	if path == "" {
		return smoke.ImageFromBytes(images.Smoke_png)
	}
	return smoke.LoadImage(path)
}

// game is the ebiten host loop around one emitter.
type game struct {
	emitter       *smoke.Emitter
	sprites       *spriteCache
	fps           *hud.FPSMeter
	width, height int
}

func newGame(em *smoke.Emitter, width, height int) *game {
	return &game{
		emitter: em,
		sprites: newSpriteCache(),
		fps:     hud.NewFPSMeter(hud.DefaultFPSWindow),
		width:   width,
		height:  height,
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.emitter.Update()

	if g.fps.Add(ebiten.ActualFPS()) {
		ebiten.SetWindowTitle(hud.Caption(g.fps.Value(), g.emitter.Len()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.emitter.Draw(&screenSurface{dst: screen, sprites: g.sprites})
}

func (g *game) Layout(int, int) (int, int) {
	return g.width, g.height
}
