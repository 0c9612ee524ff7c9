package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable control firing a callback.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()
	clicked bool // debounce: one click per press
}

// NewButton creates a button.
func NewButton(x, y, w, h float64, label string, onClick func()) *Button {
	return &Button{
		Label:   label,
		X:       x,
		Y:       y,
		W:       w,
		H:       h,
		OnClick: onClick,
	}
}

func (b *Button) isOver(mx, my int) bool {
	return float64(mx) >= b.X && float64(mx) <= b.X+b.W &&
		float64(my) >= b.Y && float64(my) <= b.Y+b.H
}

// Update fires OnClick once per mouse press.
func (b *Button) Update() {
	mx, my := ebiten.CursorPosition()
	if b.isOver(mx, my) && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !b.clicked && b.OnClick != nil {
			b.OnClick()
			b.clicked = true
		}
	} else {
		b.clicked = false
	}
}

// Draw renders the button, highlighted on hover.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 80, G: 120, B: 180, A: 255}
	if b.isOver(ebiten.CursorPosition()) {
		bg = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	}

	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+8), int(b.Y+b.H/2-8))
}

// Height is the vertical space the button occupies in a panel.
func (b *Button) Height() float64 {
	return b.H + 8
}

// SetY repositions the widget vertically.
func (b *Button) SetY(y float64) { b.Y = y }
