// @focus: #terminal { canvas, output }
package terminal

import (
	"bufio"
	"io"
	"sync"
)

// Canvas is the shared drawing surface for all lanes
// Each positioned write is emitted as one flushed unit so a cursor move from
// one goroutine is never separated from its glyphs by another goroutine's move
// Writes are clipped to the configured dimensions; errors from the underlying writer are ignored
type Canvas struct {
	mu        sync.Mutex
	writer    *bufio.Writer
	width     int
	height    int
	colorMode ColorMode
}

// NewCanvas creates a canvas of the given size over w
func NewCanvas(w io.Writer, width, height int, colorMode ColorMode) *Canvas {
	return &Canvas{
		writer:    bufio.NewWriterSize(w, 4096),
		width:     width,
		height:    height,
		colorMode: colorMode,
	}
}

// Width returns the canvas width in columns
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows
func (c *Canvas) Height() int {
	return c.height
}

// MoveCursor positions cursor (0-indexed), clamped to the canvas
func (c *Canvas) MoveCursor(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	writeCursorPos(c.writer, clamp(x, 0, c.width-1), clamp(y, 0, c.height-1))
	c.writer.Flush()
}

// HideCursor makes the terminal cursor invisible
func (c *Canvas) HideCursor() {
	c.writeRaw(csiCursorHide)
}

// ShowCursor makes the terminal cursor visible
func (c *Canvas) ShowCursor() {
	c.writeRaw(csiCursorShow)
}

// Clear erases the screen and homes the cursor
func (c *Canvas) Clear() {
	c.writeRaw(csiClear)
}

// WriteAt draws text starting at column x of row y
// Rows outside the canvas are dropped, columns are clipped at both edges
func (c *Canvas) WriteAt(x, y int, text string, fg Color) {
	if y < 0 || y >= c.height {
		return
	}

	runes := []rune(text)
	if x < 0 {
		if -x >= len(runes) {
			return
		}
		runes = runes[-x:]
		x = 0
	}
	if x >= c.width {
		return
	}
	if x+len(runes) > c.width {
		runes = runes[:c.width-x]
	}
	if len(runes) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.writer
	writeCursorPos(w, x, y)
	writeFg(w, fg, c.colorMode)
	for _, r := range runes {
		w.WriteRune(r)
	}
	if !fg.IsDefault() {
		w.Write(csiDefaultFg)
	}
	w.Flush()
}

// Blank overwrites n columns starting at (x, y) with spaces
func (c *Canvas) Blank(x, y, n int) {
	if n <= 0 {
		return
	}
	c.WriteAt(x, y, spaces(n), ColorDefault)
}

// Restore parks the cursor on the bottom row and makes it visible
// Safe to call any number of times
func (c *Canvas) Restore() {
	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.writer
	w.Write(csiReset)
	writeCursorPos(w, 0, max(c.height-1, 0))
	w.Write(csiCursorShow)
	w.Flush()
}

func (c *Canvas) writeRaw(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Write(data)
	c.writer.Flush()
}

// blankRow backs Blank for the common sprite widths without allocating
var blankRow = func() string {
	b := make([]byte, 256)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}()

func spaces(n int) string {
	if n <= len(blankRow) {
		return blankRow[:n]
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
