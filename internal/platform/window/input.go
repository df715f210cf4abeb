package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// keyBindings mirrors the terminal bindings.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeySpace:  core.ActionFlap,
	ebiten.KeyUp:     core.ActionFlap,
	ebiten.KeyW:      core.ActionFlap,
	ebiten.KeyC:      core.ActionCycleColor,
	ebiten.KeyN:      core.ActionCycleScene,
	ebiten.KeyR:      core.ActionRestart,
	ebiten.KeyEnter:  core.ActionRestart,
	ebiten.KeyL:      core.ActionLeaderboard,
	ebiten.KeyP:      core.ActionPause,
	ebiten.KeyQ:      core.ActionQuit,
	ebiten.KeyEscape: core.ActionQuit,
}

// pollInput collects the presses of this tick. Cursor positions are already
// in world pixels because Layout keeps the world resolution.
func pollInput() core.InputFrame {
	in := core.NewInputFrame()
	for k, a := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			in.Set(a)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.SetClick(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Set(core.ActionCycleColor)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		in.Set(core.ActionCycleScene)
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		in.SetClick(float64(x), float64(y))
	}
	return in
}
