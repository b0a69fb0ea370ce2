package xor

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// GenSeed will generate a Seed from the OS entropy pool.
func GenSeed() (Seed, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return 0, fmt.Errorf("failed to read seed bytes: %v", err)
	}
	return Seed(binary.BigEndian.Uint32(buf)), nil
}
