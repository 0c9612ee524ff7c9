package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything the panel can stack vertically.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetY(y float64)
}

// Panel stacks widgets vertically with labels. Widgets keep their own value
// state; the panel only owns layout and input dispatch.
type Panel struct {
	X, Y          float64
	Width, Height float64

	widgets []Widget
	labels  []string
}

// NewPanel creates an empty panel at the given position.
func NewPanel(x, y, width, height float64) *Panel {
	return &Panel{X: x, Y: y, Width: width, Height: height}
}

// AddSlider appends a labeled slider and returns it.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(s, label)
	return s
}

// AddCheckbox appends a labeled checkbox and returns it.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(c, label)
	return c
}

// AddButton appends a button and returns it. The label is drawn on the
// button itself, not above it.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 24, label, onClick)
	p.add(b, "")
	return b
}

func (p *Panel) add(w Widget, label string) {
	p.widgets = append(p.widgets, w)
	p.labels = append(p.labels, label)
	p.layout()
}

// layout assigns each widget its vertical slot.
func (p *Panel) layout() {
	y := p.Y + 28
	for i, w := range p.widgets {
		if p.labels[i] != "" {
			y += 14
		}
		w.SetY(y)
		y += w.Height()
	}
}

// Update dispatches input to every widget.
func (p *Panel) Update() {
	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel background, labels and widgets.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		color.RGBA{R: 40, G: 40, B: 45, A: 230}, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		2, color.RGBA{R: 100, G: 100, B: 110, A: 255}, true)

	ebitenutil.DebugPrintAt(screen, "Parameters", int(p.X+10), int(p.Y+6))

	y := p.Y + 28
	for i, w := range p.widgets {
		if p.labels[i] != "" {
			label := p.labels[i]
			if s, ok := w.(*Slider); ok {
				label = fmt.Sprintf("%s: %.2f", label, s.Value)
			}
			ebitenutil.DebugPrintAt(screen, label, int(p.X+10), int(y))
			y += 14
		}
		w.Draw(screen)
		y += w.Height()
	}
}
