package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Input
	}{
		{"empty", "", Input{}},
		{"letters", "aad", Input{Left: 2, Right: 1}},
		{"vim keys", "hl", Input{Left: 1, Right: 1}},
		{"arrows", "\x1b[D\x1b[C\x1b[C", Input{Left: 1, Right: 2}},
		{"up arrow ignored", "\x1b[A", Input{}},
		{"space starts", " ", Input{Start: true}},
		{"enter starts", "\r", Input{Start: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl c", "\x03", Input{Quit: true}},
		{"lone escape", "\x1b", Input{Escape: true}},
		{"mixed", "a\x1b[Cq", Input{Left: 1, Right: 1, Quit: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.in))
			if keys(got) != keys(tt.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

type keySet struct {
	quit, start, escape, closed bool
	left, right                 int
}

func keys(in Input) keySet {
	return keySet{in.Quit, in.Start, in.Escape, in.Closed, in.Left, in.Right}
}

func TestReadInputReportsClose(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("d")))

	var got Input
	deadline := time.Now().Add(time.Second)
	right := 0
	for time.Now().Before(deadline) {
		got = ReadInput(s)
		right += got.Right
		if got.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !got.Closed {
		t.Fatal("stream never reported EOF")
	}
	if right != 1 {
		t.Fatalf("saw %d right presses, want 1", right)
	}
}
