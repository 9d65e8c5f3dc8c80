// Package zreader adapts the push-style inflate.Stream to the plain
// io.ReadCloser the rest of the Go ecosystem expects. It owns the
// input staging buffer and the Inflate loop; callers just Read.
package zreader

import (
	"errors"
	"io"

	"github.com/zstreamkit/zstream/inflate"
)

// ErrDictionary is returned when the stream demands a preset
// dictionary that the reader was not given.
var ErrDictionary = errors.New("zreader: stream requires a preset dictionary")

// A DataError reports corrupt compressed input. Msg is the decoder's
// diagnostic for the first inconsistency found.
type DataError struct {
	Msg string
}

func (e *DataError) Error() string {
	return "zreader: invalid compressed data: " + e.Msg
}

// Resetter rebinds a Reader to a new source so it can be reused
// instead of reallocated.
type Resetter interface {
	// Reset discards the Reader's state and re-targets it at r, with
	// dict as the preset dictionary for the next stream (nil for
	// none).
	Reset(r io.Reader, dict []byte) error
}

const inBufSize = 4096

type Reader struct {
	r    io.Reader
	strm *inflate.Stream
	dict []byte
	buf  [inBufSize]byte
	eof  bool  // underlying reader reached EOF
	err  error // sticky; io.EOF after a clean stream end
}

// NewReader returns a ReadCloser decompressing the zlib-wrapped
// DEFLATE stream in r, verifying the Adler-32 trailer. The ReadCloser
// also implements Resetter.
func NewReader(r io.Reader) io.ReadCloser {
	return newReader(r, inflate.MaxWindowBits, nil)
}

// NewReaderRaw is NewReader for a bare DEFLATE stream with no zlib
// header or checksum trailer.
func NewReaderRaw(r io.Reader) io.ReadCloser {
	return newReader(r, -inflate.MaxWindowBits, nil)
}

// NewReaderDict is NewReader with a preset dictionary, supplied to
// the decoder if and when the stream asks for it. Streams that never
// ask decode as with NewReader.
func NewReaderDict(r io.Reader, dict []byte) io.ReadCloser {
	return newReader(r, inflate.MaxWindowBits, dict)
}

// NewReaderWindow is NewReader with an explicit window exponent,
// 8..15 or negative for raw streams, for callers decoding streams
// produced with a reduced window.
func NewReaderWindow(r io.Reader, windowBits int) io.ReadCloser {
	return newReader(r, windowBits, nil)
}

func newReader(r io.Reader, windowBits int, dict []byte) *Reader {
	strm, c := inflate.NewStream(windowBits)
	if c != inflate.Ok {
		return &Reader{err: errors.New("zreader: " + c.String())}
	}
	return &Reader{r: r, strm: strm, dict: dict}
}

func (z *Reader) Read(p []byte) (int, error) {
	if z.err != nil {
		return 0, z.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	z.strm.Out = p
	for {
		if len(z.strm.In) == 0 && !z.eof {
			n, err := z.r.Read(z.buf[:])
			z.strm.In = z.buf[:n]
			if err == io.EOF {
				z.eof = true
			} else if err != nil {
				z.err = err
				break
			}
		}
		c := z.strm.Inflate(inflate.NoFlush)
		if c == inflate.NeedDict {
			if z.dict == nil {
				z.err = ErrDictionary
				break
			}
			if z.strm.SetDictionary(z.dict) != inflate.Ok {
				z.err = &DataError{Msg: "incorrect dictionary"}
				break
			}
			continue
		}
		if c == inflate.StreamEnd {
			z.err = io.EOF
			break
		}
		if c == inflate.ErrData {
			z.err = &DataError{Msg: z.strm.Msg}
			break
		}
		if c != inflate.Ok && c != inflate.ErrBuf {
			z.err = errors.New("zreader: " + c.String())
			break
		}
		if len(z.strm.Out) == 0 {
			break // p is full
		}
		if c == inflate.ErrBuf && z.eof {
			z.err = io.ErrUnexpectedEOF
			break
		}
	}
	n := len(p) - len(z.strm.Out)
	z.strm.Out = nil
	if n > 0 && z.err != io.EOF {
		// Surface any sticky error on the next call.
		return n, nil
	}
	return n, z.err
}

// Close stops the reader. It reports any corruption or read error the
// stream ended with; reaching the end of the stream is not an error.
func (z *Reader) Close() error {
	if z.err == io.EOF {
		return nil
	}
	return z.err
}

// Reset implements Resetter.
func (z *Reader) Reset(r io.Reader, dict []byte) error {
	if z.strm == nil {
		return z.err
	}
	z.r = r
	z.dict = dict
	z.eof = false
	z.err = nil
	z.strm.In = nil
	if c := z.strm.Reset(); c != inflate.Ok {
		return errors.New("zreader: " + c.String())
	}
	return nil
}
