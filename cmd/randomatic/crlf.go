package main

import (
	"bytes"
	"io"
)

var crlf = []byte("\r\n")

// CRLFWriter is an adapter that writes every \n as \r\n.
type CRLFWriter struct {
	Out io.Writer
}

func (w CRLFWriter) Write(p []byte) (n int, err error) {
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			// Unterminated tail.
			m, err := w.Out.Write(p)
			return n + m, err
		}

		if _, err := w.Out.Write(p[:i]); err != nil {
			return n, err
		}
		if _, err := w.Out.Write(crlf); err != nil {
			return n + i, err
		}

		// Report the original length so callers see a full write.
		n += i + 1
		p = p[i+1:]
	}
	return n, nil
}
