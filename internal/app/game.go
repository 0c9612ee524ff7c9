package app

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-boids2d/internal/ui"
	"github.com/lao-tseu-is-alive/go-boids2d/pkg/boids"
)

var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// Game is the ebiten shell around the simulation: it drives one World.Tick
// per frame, pushes the widget values into the world between ticks and
// draws the latest observation snapshot. The core does no drawing and has
// no opinion on cadence; ebiten's TPS is the tick clock here.
type Game struct {
	world *boids.World
	log   *zap.Logger

	panel            *ui.Panel
	widgetCohesion   *ui.Slider
	widgetSeparation *ui.Slider
	widgetAlignment  *ui.Slider
	widgetNoise      *ui.Slider
	widgetVelocity   *ui.Slider
	widgetSenseRange *ui.Slider
	widgetShowSense  *ui.Checkbox
	widgetBounce     *ui.Checkbox
	widgetSquareSep  *ui.Checkbox

	// Rolling tick-time average in ms, shown in the stats overlay.
	updateAvg float64
}

// NewGame builds the UI panel around the world's current parameters.
func NewGame(world *boids.World, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := world.Params()

	panel := ui.NewPanel(10, 10, 260, 500)
	g := &Game{
		world: world,
		log:   logger,
		panel: panel,

		widgetCohesion:   panel.AddSlider("Coherence Weight", 0, 5, p.CohesionWeight),
		widgetSeparation: panel.AddSlider("Separation Weight", 0, 100, p.SeparationWeight),
		widgetAlignment:  panel.AddSlider("Alignment Weight", 0, 40, p.AlignmentWeight),
		widgetNoise:      panel.AddSlider("Noise Amount", 0, 40, p.NoiseAmount),
		widgetVelocity:   panel.AddSlider("Velocity", 0, 100, p.Velocity),
		widgetSenseRange: panel.AddSlider("Sensing Range", 1, 100, p.SenseRange),
		widgetShowSense:  panel.AddCheckbox("Show Sensing Ranges", false),
		widgetBounce:     panel.AddCheckbox("Edge Bounce", p.Bounce),
		widgetSquareSep:  panel.AddCheckbox("Square Separation", p.SeparationMode == boids.SeparationSquare),
	}
	panel.AddButton("Reset Parameters to Defaults", g.resetWidgets)

	return g
}

// resetWidgets snaps every control back to the stock defaults. The reset
// values flow into the world on the next Update like any other edit.
func (g *Game) resetWidgets() {
	d := boids.DefaultParams()
	g.widgetCohesion.Value = d.CohesionWeight
	g.widgetSeparation.Value = d.SeparationWeight
	g.widgetAlignment.Value = d.AlignmentWeight
	g.widgetNoise.Value = d.NoiseAmount
	g.widgetVelocity.Value = d.Velocity
	g.widgetSenseRange.Value = d.SenseRange
	g.widgetBounce.Value = d.Bounce
	g.widgetSquareSep.Value = d.SeparationMode == boids.SeparationSquare
	g.world.ResetParams()
	g.log.Info("parameters reset to defaults")
}

// paramsFromWidgets assembles the parameter snapshot the next tick should see.
func (g *Game) paramsFromWidgets() boids.Params {
	mode := boids.SeparationRoot
	if g.widgetSquareSep.Value {
		mode = boids.SeparationSquare
	}
	return boids.Params{
		SenseRange:       g.widgetSenseRange.Value,
		SeparationWeight: g.widgetSeparation.Value,
		AlignmentWeight:  g.widgetAlignment.Value,
		CohesionWeight:   g.widgetCohesion.Value,
		Velocity:         g.widgetVelocity.Value,
		NoiseAmount:      g.widgetNoise.Value,
		Bounce:           g.widgetBounce.Value,
		SeparationMode:   mode,
	}
}

// Update runs one simulation tick.
func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	// Parameters change strictly between ticks.
	if err := g.world.SetParams(g.paramsFromWidgets()); err != nil {
		g.log.Warn("rejected parameter update", zap.Error(err))
	}

	g.world.Tick()
	return nil
}

// Draw renders the flock from the latest snapshot, the sensing circles when
// toggled, the parameter panel and a stats overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 30, A: 255})

	p := g.world.Params()
	snap := g.world.Snapshot()
	for _, b := range snap {
		if g.widgetShowSense.Value {
			vector.StrokeCircle(screen,
				float32(b.Pos.X), float32(b.Pos.Y), float32(p.SenseRange),
				1, color.RGBA{R: 255, G: 0, B: 0, A: 120}, true)
		}
		drawBoid(screen, b)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTick: %.2fms\nBoids: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.updateAvg, len(snap))
	ebitenutil.DebugPrintAt(screen, msg, int(g.world.Bound())-110, 10)
}

// drawBoid renders a small triangle pointing along the heading.
func drawBoid(screen *ebiten.Image, b boids.State) {
	angle := b.Heading.Angle()

	tipX := b.Pos.X + math.Cos(angle)*6
	tipY := b.Pos.Y + math.Sin(angle)*6
	rightX := b.Pos.X + math.Cos(angle+2.5)*5
	rightY := b.Pos.Y + math.Sin(angle+2.5)*5
	leftX := b.Pos.X + math.Cos(angle-2.5)*5
	leftY := b.Pos.Y + math.Sin(angle-2.5)*5

	vertices := []ebiten.Vertex{
		{DstX: float32(tipX), DstY: float32(tipY), SrcX: 1, SrcY: 1,
			ColorR: 0.4, ColorG: 0.8, ColorB: 1, ColorA: 1},
		{DstX: float32(rightX), DstY: float32(rightY), SrcX: 1, SrcY: 1,
			ColorR: 0.4, ColorG: 0.8, ColorB: 1, ColorA: 1},
		{DstX: float32(leftX), DstY: float32(leftY), SrcX: 1, SrcY: 1,
			ColorR: 0.4, ColorG: 0.8, ColorB: 1, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, whiteImage, &ebiten.DrawTrianglesOptions{})
}

// Layout keeps the logical screen square at the world bound.
func (g *Game) Layout(w, h int) (int, int) {
	return int(g.world.Bound()), int(g.world.Bound())
}
