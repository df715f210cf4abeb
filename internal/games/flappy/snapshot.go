package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Phase     Phase
	Paused    bool
	Score     int
	HighScore int
	Scene     int

	WorldW, WorldH, GroundY float64

	Actor     ActorView
	Obstacles []Obstacle
	Backdrop  LayerView
	Ground    LayerView

	SplashAlpha  float64
	DimmerAlpha  float64
	OverlayAlpha float64
	BannerAlpha  float64
	ButtonAlpha  float64

	Plaque        PlaqueView
	RestartButton core.RectF
	BoardButton   core.RectF
	ButtonsActive bool
}

// ActorView is the bird as drawn.
type ActorView struct {
	X, Y   float64
	Angle  float64
	Frame  int
	Color  int
	Bounds core.RectF

	mask *Mask
}

// Covers reports whether the world point lies on the rotated sprite.
func (v ActorView) Covers(px, py float64) bool {
	if v.mask == nil {
		return false
	}
	return v.mask.ContainsPoint(v.X, v.Y, v.Angle, px, py)
}

// Point returns the world position of a sprite-local offset from the centre.
func (v ActorView) Point(dx, dy float64) (float64, float64) {
	x, y := rotate(dx, dy, v.Angle)
	return v.X + x, v.Y + y
}

// Size returns the unrotated sprite size.
func (v ActorView) Size() (int, int) {
	if v.mask == nil {
		return 0, 0
	}
	return v.mask.Size()
}

// LayerView is one scrolling layer.
type LayerView struct {
	Slots     []float64
	TileWidth float64
	Y         float64
}

// TileAt returns the left edge of the tile covering world x, if any.
func (l LayerView) TileAt(x float64) (float64, bool) {
	for _, s := range l.Slots {
		if x >= s && x < s+l.TileWidth {
			return s, true
		}
	}
	return 0, false
}

// PlaqueView is the score plaque as drawn.
type PlaqueView struct {
	Rect    core.RectF
	Slide   float64
	Shown   int
	Best    int
	NewBest bool
	Medal   Medal
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Snapshot {
	a := s.actor
	return Snapshot{
		Phase:     s.phase,
		Paused:    s.paused,
		Score:     s.score,
		HighScore: s.highScore,
		Scene:     s.scene,
		WorldW:    s.cfg.World.Width,
		WorldH:    s.cfg.World.Height,
		GroundY:   s.groundY,
		Actor: ActorView{
			X:      a.X,
			Y:      a.Y,
			Angle:  a.Angle,
			Frame:  a.Frame,
			Color:  a.Color,
			Bounds: a.Bounds(),
			mask:   a.mask,
		},
		Obstacles:    append([]Obstacle(nil), s.field.Obstacles()...),
		Backdrop:     layerView(s.backdrop),
		Ground:       layerView(s.ground),
		SplashAlpha:  s.splash.Alpha(),
		DimmerAlpha:  s.dimmer.Alpha(),
		OverlayAlpha: s.overlay.Alpha(),
		BannerAlpha:  s.banner.Alpha(),
		ButtonAlpha:  s.buttons.Alpha(),
		Plaque: PlaqueView{
			Rect:    s.PlaqueRect(),
			Slide:   s.plaque.Slide(),
			Shown:   s.plaque.Shown(),
			Best:    s.plaque.Best(),
			NewBest: s.plaque.NewBest(),
			Medal:   s.plaque.Medal(),
		},
		RestartButton: s.RestartButton(),
		BoardButton:   s.LeaderboardButton(),
		ButtonsActive: s.ButtonsActive(),
	}
}

func layerView(l *ScrollLayer) LayerView {
	return LayerView{
		Slots:     append([]float64(nil), l.Slots()...),
		TileWidth: l.TileWidth(),
		Y:         l.Y(),
	}
}
