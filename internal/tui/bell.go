package tui

import (
	"io"

	"github.com/akyairhashvil/jot/internal/util"
)

const bell = "\a"

// BellNotifier rings the terminal bell on a limit violation. It is the
// terminal stand-in for a haptic error pulse.
type BellNotifier struct {
	w io.Writer
}

// NewBellNotifier writes the bell to w. A nil writer makes it a no-op.
func NewBellNotifier(w io.Writer) BellNotifier {
	return BellNotifier{w: w}
}

func (b BellNotifier) LimitViolated() {
	if b.w == nil {
		return
	}
	_, err := io.WriteString(b.w, bell)
	util.LogError("ring bell", err)
}
