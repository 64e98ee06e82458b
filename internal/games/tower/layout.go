package tower

import "github.com/vovakirdan/tui-hanoi/internal/hanoi"

// Screen rows reserved around the towers.
const (
	hudRows    = 2 // Title and status line
	footerRows = 4 // Pile labels, controls, message, spare
)

// layout maps puzzle coordinates to screen cells for a given level.
// Disk k is 2k+1 cells wide, centered on its pole.
type layout struct {
	level   int
	originX int // Left edge of the first pile column
	pitch   int // Width of one pile column
	liftRow int // Row a moving disk travels along, just above the poles
	baseRow int // Row of the pile bases
	width   int // Total width of the three columns
	height  int // Rows from the top of the screen to the end of the footer
}

func newLayout(level, screenW int) layout {
	pitch := 2*level + 3
	width := hanoi.PileCount * pitch
	liftRow := hudRows + 1
	baseRow := liftRow + level + 2 // Pole is level+1 rows tall
	return layout{
		level:   level,
		originX: (screenW - width) / 2,
		pitch:   pitch,
		liftRow: liftRow,
		baseRow: baseRow,
		width:   width,
		height:  baseRow + 1 + footerRows,
	}
}

// fits reports whether the towers fit in a screen of the given size.
func (l layout) fits(screenW, screenH int) bool {
	return l.width <= screenW && l.height <= screenH
}

// center returns the column of pile p's pole.
func (l layout) center(p int) int {
	return l.originX + p*l.pitch + l.pitch/2
}

// slotRow returns the row of the disk at height slot on a pile (0 = bottom).
func (l layout) slotRow(slot int) int {
	return l.baseRow - 1 - slot
}

// poleTop returns the first row of the poles.
func (l layout) poleTop() int {
	return l.liftRow + 1
}

// labelRow, controlsRow and messageRow are the footer lines.
func (l layout) labelRow() int    { return l.baseRow + 1 }
func (l layout) controlsRow() int { return l.baseRow + 2 }
func (l layout) messageRow() int  { return l.baseRow + 3 }
