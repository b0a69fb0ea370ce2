package tmpl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/strlit/pkg/strlit"
	"github.com/saylorsolutions/strlit/pkg/xor"
	"golang.org/x/crypto/blake2s"
)

var ErrSeedMode = errors.New("unknown seed mode")

// SeedMode selects how a seed is chosen for each generated literal.
type SeedMode string

const (
	// SeedSite derives the seed from the input file name and the literal's line number.
	SeedSite SeedMode = "site"
	// SeedHash uses a BLAKE2s digest of the input file name, line number, and literal name.
	// Unlike SeedSite, input files sharing a three character prefix won't produce the same seeds.
	SeedHash SeedMode = "hash"
	// SeedRandom uses a new seed from the OS entropy pool for every literal, so output differs each run.
	SeedRandom SeedMode = "random"
)

// ParseSeedMode returns the SeedMode named by s, ignoring case.
func ParseSeedMode(s string) (SeedMode, error) {
	switch mode := SeedMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case SeedSite, SeedHash, SeedRandom:
		return mode, nil
	default:
		return "", fmt.Errorf("%w '%s', expected one of %s, %s, or %s", ErrSeedMode, s, SeedSite, SeedHash, SeedRandom)
	}
}

func (m SeedMode) seed(file string, line int, name string) (xor.Seed, error) {
	switch m {
	case SeedSite, "":
		return strlit.DeriveSeed(strlit.CallSite{File: file, Line: line}), nil
	case SeedHash:
		sum := blake2s.Sum256([]byte(fmt.Sprintf("%s:%d:%s", file, line, name)))
		return xor.Seed(binary.BigEndian.Uint32(sum[:4])), nil
	case SeedRandom:
		return xor.GenSeed()
	default:
		return 0, fmt.Errorf("%w '%s'", ErrSeedMode, string(m))
	}
}
