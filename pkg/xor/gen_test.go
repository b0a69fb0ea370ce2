package xor

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenSeed(t *testing.T) {
	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef})

	seed, err := GenSeed()
	assert.NoError(t, err)
	assert.Equal(t, Seed(0xdeadbeef), seed)
}

func TestGenSeed_Neg(t *testing.T) {
	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewBuffer(nil)

	_, err := GenSeed()
	assert.Error(t, err)
}
