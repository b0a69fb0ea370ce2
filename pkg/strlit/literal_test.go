package strlit

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/saylorsolutions/strlit/pkg/xor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Scenario(t *testing.T) {
	lit := Encode("abc", 42)
	expected := []byte{
		0x61 ^ byte(xor.Next(42)),
		0x62 ^ byte(xor.Next(43)),
		0x63 ^ byte(xor.Next(44)),
		0x00 ^ byte(xor.Next(45)),
	}
	assert.Equal(t, expected, lit.data)
	assert.Equal(t, []byte{0x7a, 0xea, 0x96, 0x62}, lit.data)
	assert.Equal(t, xor.Seed(42), lit.Seed())
	assert.Equal(t, 3, lit.Len())
	assert.Equal(t, []byte{0x61, 0x62, 0x63}, lit.Bytes())
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"DEBUG_MARKER",
		"internal.identifier/with-punctuation",
		"embedded\x00null",
		"ünïcödé ✓",
		strings.Repeat("long ", 200),
	}
	seeds := []xor.Seed{0, 1, 42, 0x7fffffff, 0xffffffff}

	for _, in := range inputs {
		for _, seed := range seeds {
			lit := Encode(in, seed)
			assert.Equal(t, in, lit.Reveal(), "seed %d", seed)
			assert.Len(t, lit.Bytes(), len(in))
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a := Encode("same input", 1234)
	b := Encode("same input", 1234)
	assert.Equal(t, a.data, b.data)
	assert.NotSame(t, &a.data[0], &b.data[0])
}

func TestEncode_NotIdentity(t *testing.T) {
	in := "a fairly typical marker string"
	lit := Encode(in, 99)
	assert.NotEqual(t, []byte(in), lit.data[:lit.Len()])
	assert.NotContains(t, string(lit.data), in)
}

func TestReveal_WrongSeed(t *testing.T) {
	lit := Encode("secret marker", 1)
	wrong := Embed(2, lit.data)
	assert.NotEqual(t, "secret marker", wrong.Reveal())
	assert.Equal(t, lit.Len(), wrong.Len())
}

func TestBytes_FreshCopy(t *testing.T) {
	lit := Encode("mutable?", 7)
	first := lit.Bytes()
	first[0] = 'X'
	assert.Equal(t, "mutable?", lit.Reveal())

	second := lit.Bytes()
	assert.NotSame(t, &first[0], &second[0])
}

func TestEmbed(t *testing.T) {
	orig := Encode("embedded", 0xabcdef)
	data := append([]byte(nil), orig.data...)
	lit := Embed(0xabcdef, data)
	for i := range data {
		data[i] = 0
	}
	assert.Equal(t, "embedded", lit.Reveal())
}

func TestZeroLiteral(t *testing.T) {
	var lit Literal
	assert.Equal(t, 0, lit.Len())
	assert.Equal(t, "", lit.Reveal())
	assert.Empty(t, lit.Bytes())

	var buf strings.Builder
	n, err := lit.WriteTo(&buf)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.Equal(t, "", Embed(5, nil).Reveal())
}

func TestAt(t *testing.T) {
	site := CallSite{File: "main.go", Line: 12}
	lit := At(site, "at a site")
	assert.Equal(t, DeriveSeed(site), lit.Seed())
	assert.Equal(t, "at a site", lit.Reveal())
}

func TestNew(t *testing.T) {
	site := Caller(0)
	lit := New("from here")
	site.Line++
	assert.Equal(t, DeriveSeed(site), lit.Seed())
	assert.Equal(t, "from here", lit.Reveal())
}

var packageLiteral = New("initialized once")

func TestNew_PackageVar(t *testing.T) {
	assert.Equal(t, "initialized once", packageLiteral.Reveal())
	assert.Equal(t, "initialized once", packageLiteral.Reveal())
}

func TestWriteTo(t *testing.T) {
	lit := Encode("streamed text", 31337)
	var buf strings.Builder
	n, err := lit.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("streamed text")), n)
	assert.Equal(t, "streamed text", buf.String())
	assert.Equal(t, "streamed text", lit.Reveal())
}

func TestString_NoLeak(t *testing.T) {
	lit := Encode("do not print me", 3)
	for _, format := range []string{"%v", "%s", "%+v", "%#v", "%q"} {
		out := fmt.Sprintf(format, lit)
		assert.NotContains(t, out, "do not print me", format)
	}
	assert.Equal(t, "strlit.Literal(15 bytes)", lit.String())
	assert.Equal(t, lit.String(), fmt.Sprintf("%#v", lit))
}

func TestReveal_Concurrent(t *testing.T) {
	lit := Encode("shared between goroutines", 555)
	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = lit.Reveal()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, "shared between goroutines", r)
	}
}
