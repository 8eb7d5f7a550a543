// Package cursor tracks the selected row and scroll offset of a list page.
package cursor

import "github.com/llehouerou/encore/internal/keymap"

// Cursor manages cursor position and scroll offset for a scrollable list.
// The list length and viewport height are passed to methods rather than stored,
// since they change when pages reload or the terminal resizes.
type Cursor struct {
	pos    int // Current cursor position (0-indexed)
	offset int // Scroll offset (first visible item index)
	margin int // Items kept visible above/below the cursor
}

// New creates a new Cursor with the specified scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta positions within a list of given length.
// If listLen is 0, this is a no-op.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump sets the cursor to an absolute position within a list of given length.
// If listLen is 0, this is a no-op.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Reset moves the cursor to position 0 and resets the offset.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	// Keep the margin smaller than half the viewport or it can never hold.
	margin := min(c.margin, max((height-1)/2, 0))

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}

	maxOffset := max(listLen-height, 0)
	c.offset = clamp(c.offset, maxOffset)
}

// ClampToBounds keeps the cursor inside a list that may have shrunk.
// Returns true if the cursor was adjusted.
func (c *Cursor) ClampToBounds(listLen, height int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.Reset()
		return changed
	}

	oldPos := c.pos
	c.pos = clamp(c.pos, listLen-1)
	c.ensureVisible(listLen, height)
	return c.pos != oldPos
}

// VisibleRange returns the range of visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = min(c.offset, listLen)
	end = min(c.offset+height, listLen)
	return start, end
}

// HandleAction applies a list navigation action and reports whether it
// was one. Callers use the result to skip their own dispatch.
func (c *Cursor) HandleAction(action keymap.Action, listLen, height int) bool {
	switch action { //nolint:exhaustive // only navigation actions apply
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.Reset()
	case keymap.ActionJumpEnd:
		c.Jump(listLen-1, listLen, height)
	case keymap.ActionPageDown:
		c.Move(max(height/2, 1), listLen, height)
	case keymap.ActionPageUp:
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
