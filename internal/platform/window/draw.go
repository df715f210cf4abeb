package window

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

const (
	lipHeight     = 24.0
	lipOverhang   = 4.0
	grassHeight   = 14.0
	maxCachedText = 256
)

var skies = []color.RGBA{
	{0x4e, 0xc0, 0xca, 0xff}, // day
	{0x0b, 0x1a, 0x35, 0xff}, // night
}

// skyColor returns the background of a scene index.
func skyColor(scene int) color.RGBA {
	n := len(skies)
	return skies[((scene%n)+n)%n]
}

// withAlpha scales a premultiplied color by a in [0, 255].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	k := core.ClampF(a, 0, 255) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}

// pipeLip returns the cap drawn at the open end of a pipe.
func pipeLip(o flappy.Obstacle, span core.RectF) core.RectF {
	y := span.Y
	if o.Slot == flappy.SlotTop {
		y = span.Bottom() - lipHeight
	}
	return core.NewRectF(span.X-lipOverhang, y, span.W+2*lipOverhang, lipHeight)
}

// plaqueY returns the top of the plaque while it slides up from below.
func plaqueY(v flappy.PlaqueView, worldH float64) float64 {
	return v.Rect.Y + (1-core.ClampF(v.Slide, 0, 1))*(worldH-v.Rect.Y)
}

// medalColor returns the fill of a medal, and false for no medal.
func medalColor(m flappy.Medal) (core.Color, bool) {
	switch m {
	case flappy.MedalBronze:
		return core.ColorOrange, true
	case flappy.MedalSilver:
		return core.ColorWhite, true
	case flappy.MedalGold:
		return core.ColorBrightYellow, true
	case flappy.MedalPlatinum:
		return core.ColorBrightCyan, true
	default:
		return core.ColorDefault, false
	}
}

// textSize returns the unscaled pixel size of s in the debug font.
func textSize(s string) (int, int) {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	return w * glyphW, len(lines) * glyphH
}

// textCache keeps prerendered debug-font strings.
type textCache struct {
	imgs map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{imgs: make(map[string]*ebiten.Image)}
}

func (c *textCache) get(s string) *ebiten.Image {
	if img, ok := c.imgs[s]; ok {
		return img
	}
	if len(c.imgs) >= maxCachedText {
		clear(c.imgs)
	}
	w, h := textSize(s)
	img := ebiten.NewImage(max(w, 1), h)
	ebitenutil.DebugPrint(img, s)
	c.imgs[s] = img
	return img
}

// painter draws one snapshot in world pixels.
type painter struct {
	dst  *ebiten.Image
	snap flappy.Snapshot
	text *textCache
}

func (p painter) draw() {
	p.dst.Fill(skyColor(p.snap.Scene))
	p.drawBackdrop()
	p.drawObstacles()
	p.drawGround()
	p.drawActor()

	if p.snap.DimmerAlpha > 0 {
		p.rect(core.NewRectF(0, 0, p.snap.WorldW, p.snap.WorldH), withAlpha(color.RGBA{A: 0xff}, p.snap.DimmerAlpha))
	}

	switch p.snap.Phase {
	case flappy.PhaseSplash:
		p.drawSplash()
	case flappy.PhaseReady:
		p.drawReady()
	case flappy.PhasePlay:
		p.drawScore()
		if p.snap.Paused {
			p.textCentered("PAUSED", p.snap.WorldH*0.4, 4, core.ColorBrightWhite.RGBA())
		}
	case flappy.PhaseGameOver:
		p.drawGameOver()
	}
}

func (p painter) rect(r core.RectF, c color.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(p.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (p painter) circle(x, y, radius float64, c color.Color) {
	vector.DrawFilledCircle(p.dst, float32(x), float32(y), float32(radius), c, true)
}

// textCentered draws s centred on the world x axis.
func (p painter) textCentered(s string, y, scale float64, c color.RGBA) {
	p.textAt(s, p.snap.WorldW/2, y, scale, c)
}

func (p painter) textAt(s string, cx, y, scale float64, c color.RGBA) {
	if c.A == 0 {
		return
	}
	w, _ := textSize(s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, y)
	op.ColorScale.ScaleWithColor(c)
	p.dst.DrawImage(p.text.get(s), op)
}

func (p painter) drawBackdrop() {
	l := p.snap.Backdrop
	height := p.snap.GroundY - l.Y
	c := flappy.PaletteFor(p.snap.Scene).Skyline.RGBA()
	w := l.TileWidth / float64(len(flappy.Skyline))
	for _, slot := range l.Slots {
		for i, frac := range flappy.Skyline {
			h := frac * height
			p.rect(core.NewRectF(slot+float64(i)*w, p.snap.GroundY-h, w+1, h), c)
		}
	}
}

func (p painter) drawObstacles() {
	pal := flappy.PaletteFor(p.snap.Scene)
	for _, o := range p.snap.Obstacles {
		span := o.Span(p.snap.WorldH)
		if span.Empty() {
			continue
		}
		p.rect(span, pal.Pipe.RGBA())
		p.rect(pipeLip(o, span), pal.PipeLip.RGBA())
	}
}

func (p painter) drawGround() {
	g := p.snap.Ground
	p.rect(core.NewRectF(0, p.snap.GroundY, p.snap.WorldW, p.snap.WorldH-p.snap.GroundY), core.ColorYellow.RGBA())

	stripe := g.TileWidth / 4
	for _, slot := range g.Slots {
		for i := 0; i < 4; i++ {
			c := core.ColorBrightGreen
			if i%2 == 1 {
				c = core.ColorGreen
			}
			p.rect(core.NewRectF(slot+float64(i)*stripe, p.snap.GroundY, stripe+1, grassHeight), c.RGBA())
		}
	}
}

// wingOffsets gives the wing height for each animation frame.
var wingOffsets = []float64{-5, 0, 5, 0}

func (p painter) drawActor() {
	a := p.snap.Actor
	body := flappy.BirdColor(a.Color).RGBA()

	b := a.Bounds
	for y := b.Y; y < b.Bottom(); y += 2 {
		for x := b.X; x < b.Right(); x += 2 {
			if a.Covers(x+1, y+1) {
				p.rect(core.NewRectF(x, y, 2, 2), body)
			}
		}
	}

	w, h := a.Size()
	fw, fh := float64(w), float64(h)

	wx, wy := a.Point(-fw*0.15, wingOffsets[a.Frame%len(wingOffsets)])
	p.circle(wx, wy, fh*0.22, core.ColorBrightWhite.RGBA())

	ex, ey := a.Point(fw*0.22, -fh*0.18)
	p.circle(ex, ey, 4, core.ColorBrightWhite.RGBA())
	px, py := a.Point(fw*0.26, -fh*0.18)
	p.circle(px, py, 2, color.RGBA{A: 0xff})

	bx, by := a.Point(fw*0.47, fh*0.08)
	p.circle(bx, by, 4, core.ColorOrange.RGBA())
}

func (p painter) drawScore() {
	p.textCentered(fmt.Sprintf("%d", p.snap.Score), 40, 4, core.ColorBrightWhite.RGBA())
}

func (p painter) drawSplash() {
	c := core.ColorBrightWhite.Fade(p.snap.SplashAlpha)
	p.textCentered("FLAPPY BIRD", p.snap.WorldH*0.4, 5, c)
	p.textCentered("a terminal flight", p.snap.WorldH*0.4+90, 2, core.ColorGray.Fade(p.snap.SplashAlpha))
}

func (p painter) drawReady() {
	p.textCentered("Flappy Bird", p.snap.WorldH/6, 4, core.ColorBrightYellow.RGBA())
	if p.snap.HighScore > 0 {
		p.textCentered(fmt.Sprintf("best %d", p.snap.HighScore), p.snap.WorldH/6+70, 2, core.ColorBrightWhite.RGBA())
	}
	p.textCentered("GET READY", p.snap.WorldH*2/3, 4, core.ColorBrightWhite.Fade(p.snap.OverlayAlpha))
	p.textCentered("space/click flap  c color  n scene", p.snap.WorldH*2/3+70, 1.5, core.ColorGray.Fade(p.snap.OverlayAlpha))
}

func (p painter) drawGameOver() {
	p.textCentered("GAME OVER", p.snap.WorldH/6, 5, core.ColorBrightRed.Fade(p.snap.BannerAlpha))

	v := p.snap.Plaque
	r := v.Rect
	r.Y = plaqueY(v, p.snap.WorldH)
	p.rect(r, core.ColorYellow.RGBA())
	p.rect(core.NewRectF(r.X+4, r.Y+4, r.W-8, r.H-8), core.ColorOrange.Fade(90))

	cx := r.X + r.W*0.68
	p.textAt("SCORE", cx, r.Y+16, 2, core.ColorBrightWhite.RGBA())
	p.textAt(fmt.Sprintf("%d", v.Shown), cx, r.Y+48, 2, core.ColorBrightWhite.RGBA())
	p.textAt("BEST", cx, r.Y+84, 2, core.ColorBrightWhite.RGBA())
	p.textAt(fmt.Sprintf("%d", v.Best), cx, r.Y+112, 2, core.ColorBrightWhite.RGBA())
	if v.NewBest {
		p.textAt("NEW", r.X+r.W-28, r.Y+84, 1.5, core.ColorBrightRed.RGBA())
	}
	if mc, ok := medalColor(v.Medal); ok {
		p.circle(r.X+r.W*0.25, r.Y+r.H/2, 32, mc.RGBA())
	}

	if p.snap.ButtonAlpha <= 0 {
		return
	}
	p.drawButton(p.snap.RestartButton, "PLAY")
	p.drawButton(p.snap.BoardButton, "SCORES")
}

func (p painter) drawButton(r core.RectF, label string) {
	a := p.snap.ButtonAlpha
	p.rect(r, core.ColorBrightWhite.Fade(a))
	p.rect(core.NewRectF(r.X+3, r.Y+3, r.W-6, r.H-6), core.ColorOrange.Fade(a))
	cx, cy := r.Center()
	p.textAt(label, cx, cy-glyphH, 2, core.ColorBrightWhite.Fade(a))
}

func (p painter) drawBoard(title string, b *board) {
	w, h := p.snap.WorldW, p.snap.WorldH
	p.rect(core.NewRectF(0, 0, w, h), withAlpha(color.RGBA{A: 0xff}, 200))

	p.textCentered("HIGH SCORES", 60, 3, core.ColorBrightYellow.RGBA())
	p.textCentered(title, 115, 2, core.ColorGray.RGBA())

	switch {
	case b.err != nil:
		p.textCentered(b.err.Error(), h*0.4, 1.5, core.ColorGray.RGBA())
	case len(b.entries) == 0:
		p.textCentered("no scores yet", h*0.4, 2, core.ColorGray.RGBA())
	default:
		for i, e := range b.entries {
			line := fmt.Sprintf("%2d  %-12.12s %5d", i+1, e.Player, e.Score)
			c := core.ColorBrightWhite
			if i == 0 {
				c = core.ColorBrightYellow
			}
			p.textCentered(line, 170+float64(i)*40, 2, c.RGBA())
		}
	}

	p.textCentered("click or press L to go back", h-60, 1.5, core.ColorGray.RGBA())
}
