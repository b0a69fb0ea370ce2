package strlit

import (
	"bytes"
	"fmt"
	"io"

	"github.com/saylorsolutions/strlit/pkg/xor"
)

// Literal is a screened string and the seed needed to reveal it.
// The screened data has one extra trailing slot for a zero terminator, which is screened but never revealed.
//
// A Literal is immutable once constructed, and is safe to reveal from multiple goroutines.
// The zero value reveals as an empty string.
type Literal struct {
	data []byte
	seed xor.Seed
}

// Encode screens s with the key stream for seed.
func Encode(s string, seed xor.Seed) Literal {
	data := make([]byte, len(s)+1)
	copy(data, s)
	for i := range data {
		data[i] ^= xor.KeyByte(seed, i)
	}
	return Literal{
		data: data,
		seed: seed,
	}
}

// At screens s with a seed derived from site.
func At(site CallSite, s string) Literal {
	return Encode(s, DeriveSeed(site))
}

// New screens s with a seed derived from the file and line New was called from.
func New(s string) Literal {
	return At(Caller(1), s)
}

// Embed reconstructs a Literal from screened data and its seed, as emitted by strlitgen.
// The data must include the terminator slot. It's copied, so the caller's slice may be reused.
func Embed(seed xor.Seed, data []byte) Literal {
	if len(data) == 0 {
		return Literal{seed: seed}
	}
	return Literal{
		data: bytes.Clone(data),
		seed: seed,
	}
}

// Len returns the length of the plain text.
func (l Literal) Len() int {
	if len(l.data) == 0 {
		return 0
	}
	return len(l.data) - 1
}

// Seed returns the seed used to screen the Literal.
func (l Literal) Seed() xor.Seed {
	return l.seed
}

// Bytes reveals the plain text into a newly allocated slice.
func (l Literal) Bytes() []byte {
	n := l.Len()
	if n == 0 {
		return []byte{}
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = l.data[i] ^ xor.KeyByte(l.seed, i)
	}
	return out
}

// Reveal returns the plain text.
func (l Literal) Reveal() string {
	return string(l.Bytes())
}

var _ io.WriterTo = Literal{}

// WriteTo streams the plain text to w without building a string first.
func (l Literal) WriteTo(w io.Writer) (int64, error) {
	xw, err := xor.NewWriter(w, l.seed)
	if err != nil {
		return 0, err
	}
	n, err := xw.Write(l.data[:l.Len()])
	return int64(n), err
}

// String never includes the plain text, so a Literal passed to fmt or a logger by mistake doesn't leak it.
func (l Literal) String() string {
	return fmt.Sprintf("strlit.Literal(%d bytes)", l.Len())
}

// GoString is the same as String.
func (l Literal) GoString() string {
	return l.String()
}
