package programs

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// bufferOutput buffers w unless it is a terminal, where each byte shows up as written.
func bufferOutput(w io.Writer) (io.Writer, func() error) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return w, func() error {
			return nil
		}
	}
	bw := bufio.NewWriter(w)
	return bw, bw.Flush
}
