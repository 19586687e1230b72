package draw

import (
	"io"
	"os"
	"strconv"
	"sync"
	"unicode/utf8"

	"golang.org/x/term"
)

// writeChunks writes data in maxChunkSize pieces so a slow link (SSH) gets
// packets close to one MTU instead of one large burst.
func writeChunks(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// ChunkWriter accumulates one frame of terminal output. Canvas.Render, the
// HUD and the overlays all append to it; Flush sends the frame in chunks.
type ChunkWriter struct {
	w   io.Writer
	buf []byte
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{w: w, buf: make([]byte, 0, 8192)}
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = appendCursor(cw.buf, col, row)
}

// appendCursor appends ESC [ row ; col H to b.
func appendCursor(b []byte, col, row int) []byte {
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

// Write implements io.Writer for use with Canvas.Render and other writers.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteRune appends a rune to the buffer.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf = utf8.AppendRune(cw.buf, r)
}

// WriteAt writes a string at a specific 1-based position. Positions left of
// or above the screen are clamped to the first column and row.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(max(col, 1), max(row, 1))
	cw.WriteString(s)
}

// WriteCentered writes s centred on column centerCol and returns the column it starts at.
func (cw *ChunkWriter) WriteCentered(centerCol, row int, s string) int {
	col := centerCol - utf8.RuneCountInString(s)/2
	cw.WriteAt(col, row, s)
	return col
}

// Len returns the number of buffered bytes not yet flushed.
func (cw *ChunkWriter) Len() int {
	return len(cw.buf)
}

// Flush writes the frame to the underlying writer and empties the buffer.
// The buffer is emptied even when the write fails.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.w, cw.buf)
	cw.buf = cw.buf[:0]
	return err
}

var _ io.Writer = (*ChunkWriter)(nil)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// TerminalSizeRawWith returns actual terminal dimensions using the provided size function.
func TerminalSizeRawWith(sizeFunc TermSizeFunc) (width, height int, err error) {
	return sizeFunc()
}

// SizeTracker holds a terminal size reported by resize events, such as SSH
// window changes. It is safe for concurrent use.
type SizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

// NewSizeTracker starts tracking from the given size.
func NewSizeTracker(width, height int) *SizeTracker {
	return &SizeTracker{width: width, height: height}
}

// Update records a new size.
func (s *SizeTracker) Update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

// Size returns the last recorded size. Its signature matches TermSizeFunc.
func (s *SizeTracker) Size() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

var _ TermSizeFunc = (*SizeTracker)(nil).Size
