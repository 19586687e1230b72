package draw

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)

	cw.WriteAt(3, 2, "hi")
	cw.WriteCentered(10, 1, "abcd")
	if out.Len() != 0 {
		t.Fatal("wrote before Flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	want := "\033[2;3Hhi\033[1;8Habcd"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
	if cw.Len() != 0 {
		t.Fatalf("buffer not reset: %d bytes", cw.Len())
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	big := strings.Repeat("x", maxChunkSize*3+7)
	cw.WriteString(big)
	if err := cw.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if out.String() != big {
		t.Fatalf("flushed %d bytes, want %d", out.Len(), len(big))
	}
}

func TestWriteAtClampsToOrigin(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.WriteAt(-4, 0, "x")
	cw.Flush()
	if out.String() != "\033[1;1Hx" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestSizeTracker(t *testing.T) {
	s := NewSizeTracker(80, 24)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Update(100+i, 40)
			s.Size()
		}(i)
	}
	wg.Wait()

	s.Update(120, 50)
	w, h, err := TerminalSizeRawWith(s.Size)
	if err != nil || w != 120 || h != 50 {
		t.Fatalf("Size() = %d, %d, %v; want 120, 50, nil", w, h, err)
	}
}
