package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans writes out to stdout and the rotated log file.
// Err accumulates every write error seen so far.
type CombinedWriter struct {
	Writers []io.Writer
	Err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.Writers = append(cw.Writers, w)
		}
	}
	return cw
}

// Write reports len(p) only when every writer took all of p, otherwise the shortest write.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	n := len(p)
	var err error
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr == nil && written < len(p) {
			werr = io.ErrShortWrite
		}
		if werr != nil {
			err = multierr.Append(err, werr)
		}
		n = min(n, written)
	}
	cw.Err = multierr.Append(cw.Err, err)
	return n, err
}
