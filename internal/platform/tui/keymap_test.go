package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space flaps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlap, false},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap, false},
		{"w flaps", runeKey('w'), core.ActionFlap, false},
		{"c cycles color", runeKey('c'), core.ActionCycleColor, false},
		{"n cycles scene", runeKey('n'), core.ActionCycleScene, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"enter restarts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart, false},
		{"l opens scores", runeKey('l'), core.ActionLeaderboard, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound key", runeKey('x'), core.ActionNone, false},
		{"down is unbound", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeySpace}, &frame) {
		t.Error("space should not quit")
	}
	if !frame.Has(core.ActionFlap) {
		t.Error("space should set flap")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is handled by the frontend, not the frame")
	}
}

// gridMapper maps each cell to ten world units.
type gridMapper struct{}

func (gridMapper) CellToWorld(col, row, cols, rows int) (float64, float64) {
	return float64(col * 10), float64(row * 10)
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		action core.Action
		click  *core.Pointer
	}{
		{
			name:   "left press clicks",
			msg:    tea.MouseMsg{X: 3, Y: 7, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			action: core.ActionFlap,
			click:  &core.Pointer{X: 30, Y: 70},
		},
		{
			name:   "right press cycles color",
			msg:    tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress},
			action: core.ActionCycleColor,
		},
		{
			name:   "middle press cycles scene",
			msg:    tea.MouseMsg{Button: tea.MouseButtonMiddle, Action: tea.MouseActionPress},
			action: core.ActionCycleScene,
		},
		{
			name: "release is ignored",
			msg:  tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
		},
		{
			name: "motion is ignored",
			msg:  tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionMotion},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapMouseToFrame(tc.msg, gridMapper{}, 48, 72, &frame)

			if tc.action == core.ActionNone {
				if len(frame.Actions) != 0 || frame.Click != nil {
					t.Errorf("expected an empty frame, got %v", frame.Actions)
				}
				return
			}
			if !frame.Has(tc.action) {
				t.Errorf("expected %s", tc.action)
			}
			switch {
			case tc.click == nil && frame.Click != nil:
				t.Errorf("unexpected click at %+v", *frame.Click)
			case tc.click != nil && (frame.Click == nil || *frame.Click != *tc.click):
				t.Errorf("click = %v, expected %+v", frame.Click, *tc.click)
			}
		})
	}
}

func TestMapMouseWithoutMapper(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, nil, 80, 24, &frame)

	if !frame.Has(core.ActionFlap) || frame.Click != nil {
		t.Error("a left click without a mapper should be a plain flap")
	}
}
