package core

import (
	"errors"
	"fmt"
	"strings"
)

// Justify is the horizontal alignment of a HUD label.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// ErrInvalidJustification is matched by every error ParseJustify returns.
var ErrInvalidJustification = errors.New("invalid justification")

// LayoutError reports a justification name that is not left, center or right.
type LayoutError struct {
	Value string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("core: unknown justification %q (want left, center or right)", e.Value)
}

// Is lets errors.Is match the sentinel.
func (e *LayoutError) Is(target error) bool {
	return target == ErrInvalidJustification
}

// ParseJustify converts a config string into a Justify.
func ParseJustify(s string) (Justify, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return JustifyLeft, nil
	case "center", "centre", "":
		return JustifyCenter, nil
	case "right":
		return JustifyRight, nil
	default:
		return JustifyCenter, &LayoutError{Value: s}
	}
}

func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyRight:
		return "right"
	default:
		return "center"
	}
}

// Offset returns the starting column of a label of textLen runes in a row of
// the given width. Labels wider than the row start at column 0.
func (j Justify) Offset(width, textLen int) int {
	switch j {
	case JustifyLeft:
		return 0
	case JustifyRight:
		return Max(width-textLen, 0)
	default:
		return Max((width-textLen)/2, 0)
	}
}
