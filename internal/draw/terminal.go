package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ANSI control sequences used by the terminal front end.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
	seqAltScreen  = "\033[?1049h"
	seqMainScreen = "\033[?1049l"
	seqReset      = "\033[0m"
)

// maxChunkSize is the maximum bytes written at once.
// Stays under a typical 1500-byte MTU for smooth SSH transmission.
const maxChunkSize = 1400

// Frame accumulates one frame of terminal output and writes it in
// MTU-sized chunks, so a frame sent over SSH arrives as few packets as
// possible. Implements io.Writer for Canvas.Render.
type Frame struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
}

// NewFrame creates a Frame that writes to w.
func NewFrame(w io.Writer) *Frame {
	return &Frame{bufw: bufio.NewWriterSize(w, 8192)}
}

// Write implements io.Writer.
func (f *Frame) Write(p []byte) (n int, err error) {
	return f.buf.Write(p)
}

// WriteString appends a string to the frame.
func (f *Frame) WriteString(s string) {
	f.buf.WriteString(s)
}

// MoveCursor appends a cursor position sequence. col and row are 1-based.
func (f *Frame) MoveCursor(col, row int) {
	f.buf.WriteString("\033[")
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(row), 10))
	f.buf.WriteByte(';')
	f.buf.Write(strconv.AppendInt(f.numBuf[:0], int64(col), 10))
	f.buf.WriteByte('H')
}

// WriteAt writes s starting at the 1-based terminal position (col, row).
// Multi-line strings keep their left edge at col.
func (f *Frame) WriteAt(col, row int, s string) {
	for i, line := range strings.Split(s, "\n") {
		f.MoveCursor(max(col, 1), max(row+i, 1))
		f.buf.WriteString(line)
	}
}

// Clear appends a full screen clear.
func (f *Frame) Clear() {
	f.buf.WriteString(seqClear)
}

// Flush writes the accumulated frame to the underlying writer in chunks,
// then resets the buffer.
func (f *Frame) Flush() error {
	data := f.buf.String()
	f.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := f.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return f.bufw.Flush()
}

// Ensure Frame satisfies io.Writer.
var _ io.Writer = (*Frame)(nil)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// EnterScreen switches to the alternate screen and hides the cursor.
func EnterScreen(w io.Writer) {
	io.WriteString(w, seqAltScreen+seqHideCursor+seqClear)
}

// LeaveScreen restores the cursor and the main screen.
func LeaveScreen(w io.Writer) {
	io.WriteString(w, seqReset+seqClear+seqShowCursor+seqMainScreen)
}
