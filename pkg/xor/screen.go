package xor

import (
	"fmt"
)

type xorScreen struct {
	seed Seed
	init int
	cur  int
}

func newXorScreen(seed Seed, offset ...int) (*xorScreen, error) {
	s := &xorScreen{
		seed: seed,
	}
	if len(offset) > 0 {
		if offset[0] < 0 {
			return nil, fmt.Errorf("offset %d must not be negative", offset[0])
		}
		s.init = offset[0]
		s.cur = s.init
	}
	return s, nil
}

func (s *xorScreen) screen(b byte) byte {
	b ^= KeyByte(s.seed, s.cur)
	s.cur++
	return b
}

func (s *xorScreen) reset() {
	s.cur = s.init
}
