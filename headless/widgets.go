package headless

import (
	"github.com/keharriso/love-nuklear/draw"
	"github.com/keharriso/love-nuklear/style"
	"github.com/keharriso/love-nuklear/transform"
)

// ============================================================================
// Widgets
// ============================================================================

// These helpers queue what the real core would draw for a few fixed-rect
// widgets, using the live style. Positions are given, not laid out.

// Window queues a window background and header with title.
func (c *Core) Window(r transform.Rect, title string) {
	w := &c.style.Window
	c.Queue(draw.Scissor{Rect: r})
	c.queueItem(r, &w.FixedBackground, float64(w.Rounding))
	if w.Border > 0 {
		c.Queue(draw.Rect{Rect: r, Rounding: float64(w.Rounding), Thickness: float64(w.Border), Color: w.BorderColor})
	}
	h := float64(c.style.Font.Height) + 2*float64(w.Header.Padding.Y)
	header := transform.Rect{X: r.X, Y: r.Y, W: r.W, H: h}
	c.queueItem(header, &w.Header.Normal, 0)
	c.label(header, title, w.Header.LabelNormal, style.Transparent, style.TextLeft, w.Header.Padding)
}

// Button queues a button in its normal state.
func (c *Core) Button(r transform.Rect, text string) {
	b := &c.style.Button
	c.queueItem(r, &b.Normal, float64(b.Rounding))
	if b.Border > 0 {
		c.Queue(draw.Rect{Rect: r, Rounding: float64(b.Rounding), Thickness: float64(b.Border), Color: b.BorderColor})
	}
	c.label(r, text, b.TextNormal, b.TextBackground, b.TextAlignment, b.Padding)
}

// Label queues text in the text style color.
func (c *Core) Label(r transform.Rect, text string, align style.Flags) {
	c.label(r, text, c.style.Text.Color, style.Transparent, align, c.style.Text.Padding)
}

func (c *Core) label(r transform.Rect, text string, fg, bg style.Color, align style.Flags, pad style.Vec2) {
	font := c.style.Font
	width := float64(c.MeasureText(font, text))
	inner := transform.Rect{
		X: r.X + float64(pad.X),
		Y: r.Y + float64(pad.Y),
		W: max(r.W-2*float64(pad.X), 0),
		H: max(r.H-2*float64(pad.Y), 0),
	}
	x := inner.X
	switch {
	case align&style.AlignCentered != 0:
		x = inner.X + (inner.W-width)/2
	case align&style.AlignRight != 0:
		x = inner.X + inner.W - width
	}
	y := inner.Y
	switch {
	case align&style.AlignMiddle != 0:
		y = inner.Y + (inner.H-float64(font.Height))/2
	case align&style.AlignBottom != 0:
		y = inner.Y + inner.H - float64(font.Height)
	}
	c.Queue(draw.Text{
		Rect:       transform.Rect{X: x, Y: y, W: width, H: float64(font.Height)},
		Font:       font,
		Text:       text,
		Background: bg,
		Foreground: fg,
	})
}

func (c *Core) queueItem(r transform.Rect, it *style.Item, rounding float64) {
	switch it.Type {
	case style.ItemColor:
		c.Queue(draw.Rect{Rect: r, Rounding: rounding, Color: it.Color, Filled: true})
	case style.ItemImage:
		c.Queue(draw.Image{Rect: r, Image: it.Image, Tint: style.RGB(255, 255, 255)})
	case style.ItemNineSlice:
		c.Queue(draw.Image{Rect: r, Image: it.Slice.Image, Tint: style.RGB(255, 255, 255)})
	}
}
