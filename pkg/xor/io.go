package xor

import (
	"bytes"
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a seed with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and reset the key stream position to its initial offset.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a seed with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and reset the key stream position to its initial offset.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *xorScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.screen(out[i])
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

// NewReader constructs a new Reader that will XOR all bytes read with the key stream for seed, starting at offset.
func NewReader(r io.Reader, seed Seed, offset ...int) (Reader, error) {
	scr, err := newXorScreen(seed, offset...)
	if err != nil {
		return nil, err
	}
	xReader := &reader{
		source: r,
		scr:    scr,
	}
	return xReader, nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *xorScreen
}

// NewWriter constructs a new Writer that will XOR all bytes written with the key stream for seed, starting at offset.
func NewWriter(target io.Writer, seed Seed, offset ...int) (Writer, error) {
	scr, err := newXorScreen(seed, offset...)
	if err != nil {
		return nil, err
	}
	xWriter := &writer{
		target: target,
		scr:    scr,
	}
	return xWriter, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	var buf bytes.Buffer
	buf.Grow(len(in))
	for i := 0; i < len(in); i++ {
		buf.WriteByte(w.scr.screen(in[i]))
	}
	return w.target.Write(buf.Bytes())
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}
