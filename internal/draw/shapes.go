package draw

// FillRect sets every pixel of the logical rectangle (x, y, w, h).
// Parts outside the canvas are clipped.
func (c *Canvas) FillRect(x, y, w, h float64) {
	x0, x1 := toPixels(x, x+w, c.scaleX)
	y0, y1 := toPixels(y, y+h, c.scaleY)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py)
		}
	}
}

// StrokeRect sets the one-pixel outline of the logical rectangle (x, y, w, h).
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	x0, x1 := toPixels(x, x+w, c.scaleX)
	y0, y1 := toPixels(y, y+h, c.scaleY)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for px := x0; px < x1; px++ {
		c.setPixel(px, y0)
		c.setPixel(px, y1-1)
	}
	for py := y0; py < y1; py++ {
		c.setPixel(x0, py)
		c.setPixel(x1-1, py)
	}
}

// FitArea sizes a render area that keeps the logical aspect ratio inside a
// terminal of cols x rows cells, with reservedTop rows kept free above it.
// Terminal cells are about twice as tall as wide, so one cell holds two
// square sub-pixels vertically.
func FitArea(cols, rows, reservedTop int, logicalWidth, logicalHeight float64) (width, height, offsetCol, offsetRow int) {
	availRows := rows - reservedTop - 1 // one row for the bottom border
	availCols := cols - 2               // side borders
	if availRows < 1 || availCols < 1 || logicalWidth <= 0 || logicalHeight <= 0 {
		return 0, 0, 0, reservedTop
	}

	scale := float64(availCols) / logicalWidth
	if s := float64(availRows*2) / logicalHeight; s < scale {
		scale = s
	}

	const eps = 1e-9
	width = int(logicalWidth*scale + eps)
	height = int(logicalHeight*scale/2 + eps)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	offsetCol = (cols - width) / 2
	offsetRow = reservedTop + (availRows-height)/2
	return width, height, offsetCol, offsetRow
}
