// internal/termui/viewport.go
package termui

// HUDRows is the number of text rows above the playfield.
const HUDRows = 1

// Viewport maps the game canvas onto a grid of terminal cells.
type Viewport struct {
	Cols, Rows    int     // terminal size
	Width, Height float64 // canvas size in game units
}

func (v Viewport) fieldRows() int {
	if r := v.Rows - HUDRows; r > 0 {
		return r
	}
	return 1
}

func (v Viewport) cellSize() (float64, float64) {
	cols := v.Cols
	if cols < 1 {
		cols = 1
	}
	return v.Width / float64(cols), v.Height / float64(v.fieldRows())
}

// ToCell returns the cell that covers canvas point (x, y).
func (v Viewport) ToCell(x, y float64) (int, int) {
	cw, ch := v.cellSize()
	return int(x / cw), int(y/ch) + HUDRows
}

// ToWorld returns the canvas point at the centre of a cell.
// ok is false for cells in the HUD rows or off the field.
func (v Viewport) ToWorld(col, row int) (x, y float64, ok bool) {
	if col < 0 || col >= v.Cols || row < HUDRows || row >= HUDRows+v.fieldRows() {
		return 0, 0, false
	}
	cw, ch := v.cellSize()
	return (float64(col) + 0.5) * cw, (float64(row-HUDRows) + 0.5) * ch, true
}

// InField reports whether a cell lies on the playfield.
func (v Viewport) InField(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= HUDRows && row < v.Rows
}
