// Package input turns raw terminal bytes into per-frame key presses.
package input

import (
	"bufio"
)

// Input represents the current frame's input state.
// Lane moves are discrete, so Left and Right count presses rather than holds.
type Input struct {
	Quit    bool
	Start   bool // Space or Enter
	Escape  bool
	Left    int
	Right   int
	Closed  bool // The reader hit EOF or an error
	Pressed []byte
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
	buf    []byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking)
// and parses them.
func ReadInput(s *Stream) Input {
	s.buf = s.buf[:0]

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			s.buf = append(s.buf, b)
		default:
			break drain
		}
	}

	in := Parse(s.buf)
	in.Closed = s.closed
	return in
}

// ResetKeyInput discards bytes typed but not yet read, so a key pressed on
// one screen does not leak into the next.
func ResetKeyInput(s *Stream) {
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				return
			}
		default:
			return
		}
	}
}

// Parse decodes a batch of bytes. Arrow keys arrive as CSI sequences
// (ESC [ C / ESC [ D); a lone ESC is the escape key.
func Parse(buf []byte) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				in.Right++
				i += 2
				continue
			case 'D': // Left arrow
				in.Left++
				i += 2
				continue
			case 'A', 'B': // Up/down arrows are unused
				i += 2
				continue
			}
		}

		applyByte(&in, b)
	}

	return in
}

// applyByte updates the input for a single pressed byte.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		in.Left++
	case 'd', 'D', 'l', 'L':
		in.Right++
	case ' ', '\n', '\r':
		in.Start = true
	case '\x1b':
		in.Escape = true
	}
}
