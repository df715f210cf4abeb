package flappy

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	pipeChar     = '█'
	skylineChar  = '▒'
	grassChar    = '▀'
	dirtChar     = '░'
	birdFull     = '█'
	birdUpper    = '▀'
	birdLower    = '▄'
	birdFallback = '●'
)

// BirdColors lists the cosmetic bird variants.
var BirdColors = []core.Color{core.ColorBrightYellow, core.ColorBrightRed, core.ColorBrightBlue}

// Palette is the color set of one day/night scene.
type Palette struct {
	Skyline core.Color
	Pipe    core.Color
	PipeLip core.Color
}

var scenes = []Palette{
	{Skyline: core.ColorCyan, Pipe: core.ColorGreen, PipeLip: core.ColorBrightGreen},
	{Skyline: core.ColorBlue, Pipe: core.ColorRed, PipeLip: core.ColorBrightRed},
}

// PaletteFor returns the palette of a scene index.
func PaletteFor(scene int) Palette {
	return scenes[((scene%len(scenes))+len(scenes))%len(scenes)]
}

// Skyline gives building heights, as a fraction of the backdrop, across one tile.
var Skyline = []float64{0.55, 0.8, 0.35, 0.65, 0.95, 0.45, 0.7, 0.5}

// BirdColor returns the color of a bird variant.
func BirdColor(variant int) core.Color {
	return BirdColors[((variant%len(BirdColors))+len(BirdColors))%len(BirdColors)]
}

// Render draws the current frame into the cell screen, scaling the world
// viewport to the screen size.
func (g *Game) Render(dst *core.Screen) {
	r := cellRenderer{
		dst:   dst,
		snap:  g.session.Snapshot(),
		score: g.scoreJustify,
		label: g.labelJustify,
	}
	r.draw()
}

type cellRenderer struct {
	dst    *core.Screen
	snap   Snapshot
	sx, sy float64 // cells per world pixel
	score  core.Justify
	label  core.Justify
}

func (r *cellRenderer) draw() {
	r.dst.Clear()
	if r.dst.Width() == 0 || r.dst.Height() == 0 {
		return
	}
	r.sx = float64(r.dst.Width()) / r.snap.WorldW
	r.sy = float64(r.dst.Height()) / r.snap.WorldH

	// A mostly opaque dimmer hides the world behind the title card.
	if r.snap.DimmerAlpha < 128 {
		r.drawBackdrop()
		r.drawObstacles()
		r.drawGround()
		r.drawActor()
	}

	switch r.snap.Phase {
	case PhaseSplash:
		r.drawSplash()
	case PhaseReady:
		r.drawReady()
	case PhasePlay:
		r.drawScore()
		if r.snap.Paused {
			r.drawMessage("PAUSED", "Press P to resume")
		}
	case PhaseGameOver:
		r.drawGameOver()
	}
}

func (r *cellRenderer) style() Palette {
	return PaletteFor(r.snap.Scene)
}

// worldX returns the world x at the centre of column c.
func (r *cellRenderer) worldX(c int) float64 {
	return (float64(c) + 0.5) / r.sx
}

// worldY returns the world y at the given fraction of row row.
func (r *cellRenderer) worldY(row int, frac float64) float64 {
	return (float64(row) + frac) / r.sy
}

func (r *cellRenderer) drawBackdrop() {
	l := r.snap.Backdrop
	height := r.snap.GroundY - l.Y
	color := r.style().Skyline
	for c := 0; c < r.dst.Width(); c++ {
		wx := r.worldX(c)
		tile, ok := l.TileAt(wx)
		if !ok {
			continue
		}
		u := (wx - tile) / l.TileWidth
		frac := Skyline[int(u*float64(len(Skyline)))%len(Skyline)]
		top := r.snap.GroundY - frac*height
		for row := 0; row < r.dst.Height(); row++ {
			wy := r.worldY(row, 0.5)
			if wy >= top && wy < r.snap.GroundY {
				r.dst.Set(c, row, skylineChar, color)
			}
		}
	}
}

func (r *cellRenderer) drawObstacles() {
	st := r.style()
	for _, o := range r.snap.Obstacles {
		span := o.Span(r.snap.WorldH)
		if span.Empty() {
			continue
		}
		cells := span.Cells(r.sx, r.sy)
		r.dst.DrawRect(cells, pipeChar, st.Pipe)

		lipRow := cells.Y
		if o.Slot == SlotTop {
			lipRow = cells.Bottom() - 1
		}
		for x := cells.X - 1; x <= cells.Right(); x++ {
			r.dst.Set(x, lipRow, pipeChar, st.PipeLip)
		}
	}
}

func (r *cellRenderer) drawGround() {
	l := r.snap.Ground
	grassRow := -1
	for row := 0; row < r.dst.Height(); row++ {
		if r.worldY(row, 0.5) < r.snap.GroundY {
			continue
		}
		if grassRow < 0 {
			grassRow = row
		}
		for c := 0; c < r.dst.Width(); c++ {
			if row != grassRow {
				r.dst.Set(c, row, dirtChar, core.ColorYellow)
				continue
			}
			color := core.ColorBrightGreen
			if tile, ok := l.TileAt(r.worldX(c)); ok {
				stripe := int((r.worldX(c) - tile) / (l.TileWidth / 4))
				if stripe%2 == 1 {
					color = core.ColorGreen
				}
			}
			r.dst.Set(c, row, grassChar, color)
		}
	}
}

// drawActor samples the rotated sprite twice per cell to use half blocks.
func (r *cellRenderer) drawActor() {
	a := r.snap.Actor
	color := BirdColor(a.Color)
	cells := a.Bounds.Cells(r.sx, r.sy)
	drawn := false
	for row := cells.Y; row < cells.Bottom(); row++ {
		for c := cells.X; c < cells.Right(); c++ {
			wx := r.worldX(c)
			upper := a.Covers(wx, r.worldY(row, 0.25))
			lower := a.Covers(wx, r.worldY(row, 0.75))
			switch {
			case upper && lower:
				r.dst.Set(c, row, birdFull, color)
			case upper:
				r.dst.Set(c, row, birdUpper, color)
			case lower:
				r.dst.Set(c, row, birdLower, color)
			default:
				continue
			}
			drawn = true
		}
	}
	if !drawn {
		r.dst.Set(int(a.X*r.sx), int(a.Y*r.sy), birdFallback, color)
	}
}

func (r *cellRenderer) drawScore() {
	r.dst.DrawLabel(1, fmt.Sprintf(" %d ", r.snap.Score), r.score, core.ColorBrightWhite)
}

func (r *cellRenderer) drawSplash() {
	if r.snap.SplashAlpha <= 0 {
		return
	}
	color := core.ColorGray
	if r.snap.SplashAlpha >= 128 {
		color = core.ColorBrightWhite
	}
	r.drawCard(r.dst.Height()/2-2, color, "F L A P P Y   B I R D", "a terminal flight")
}

func (r *cellRenderer) drawReady() {
	r.dst.DrawLabel(core.Max(r.dst.Height()/6, 0), "Flappy Bird", r.label, core.ColorBrightYellow)
	if r.snap.HighScore > 0 {
		r.dst.DrawLabel(core.Max(r.dst.Height()/6, 0)+1, fmt.Sprintf("best %d", r.snap.HighScore), r.label, core.ColorWhite)
	}
	if !(r.snap.OverlayAlpha > 0) {
		return
	}
	color := core.ColorGray
	if r.snap.OverlayAlpha >= 128 {
		color = core.ColorBrightWhite
	}
	row := r.dst.Height() * 2 / 3
	r.dst.DrawLabel(row, "GET READY", r.label, color)
	r.dst.DrawLabel(row+1, "space/click flap · c color · n scene", r.label, core.ColorGray)
}

func (r *cellRenderer) drawGameOver() {
	r.drawScore()
	if r.snap.BannerAlpha > 0 {
		r.dst.DrawLabel(core.Max(r.dst.Height()/6, 0), "GAME OVER", r.label, core.ColorBrightRed)
	}

	p := r.snap.Plaque
	if p.Slide <= 0 {
		return
	}
	rect := p.Rect
	rect.Y += (1 - p.Slide) * (r.snap.WorldH - rect.Y)
	box := rect.Cells(r.sx, r.sy)
	box.W = core.Max(box.W, 24)
	box.H = core.Max(box.H, 6)
	box.X = core.Max((r.dst.Width()-box.W)/2, 0)
	r.dst.DrawBox(box, core.ColorWhite)

	lines := []string{
		fmt.Sprintf("SCORE %6d", p.Shown),
		fmt.Sprintf("BEST  %6d", p.Best),
	}
	if p.Medal != MedalNone {
		lines = append(lines, "medal: "+p.Medal.String())
	}
	for i, line := range lines {
		r.dst.DrawText(box.X+2, box.Y+1+i, line, core.ColorBrightWhite)
	}
	if p.NewBest && p.Shown == r.snap.Score {
		r.dst.DrawText(box.Right()-6, box.Y+2, "NEW", core.ColorBrightRed)
	}

	if r.snap.ButtonAlpha <= 0 || p.Slide < 1 {
		return
	}
	color := core.ColorGray
	if r.snap.ButtonsActive {
		color = core.ColorBrightWhite
	}
	r.drawButton(r.snap.RestartButton, "PLAY (r)", color)
	r.drawButton(r.snap.BoardButton, "SCORES (l)", color)
}

func (r *cellRenderer) drawButton(rect core.RectF, text string, color core.Color) {
	cells := rect.Cells(r.sx, r.sy)
	w := utf8.RuneCountInString(text)
	x := cells.X + (cells.W-w)/2
	y := cells.Y + cells.H/2
	r.dst.DrawText(x-2, y, "[ "+text+" ]", color)
}

// drawCard draws a centered box with a title and a subtitle.
func (r *cellRenderer) drawCard(y int, color core.Color, title, subtitle string) {
	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	box := core.NewRect((r.dst.Width()-boxW)/2, y, boxW, 5)
	r.dst.DrawBox(box, color)
	r.dst.DrawText(box.X+(boxW-utf8.RuneCountInString(title))/2, y+1, title, color)
	r.dst.DrawText(box.X+(boxW-utf8.RuneCountInString(subtitle))/2, y+3, subtitle, color)
}

func (r *cellRenderer) drawMessage(title, subtitle string) {
	r.drawCard((r.dst.Height()-5)/2, core.ColorBrightWhite, title, subtitle)
}
