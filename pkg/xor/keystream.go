package xor

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// Seed parameterizes the key stream.
type Seed uint32

// Next applies one step of the key stream recurrence.
// Arithmetic is 32-bit unsigned and wraps on overflow.
func Next(x uint32) uint32 {
	return x*lcgMultiplier + lcgIncrement
}

// KeyByte returns the key byte at index for the given seed.
func KeyByte(seed Seed, index int) byte {
	return byte(Next(uint32(seed) + uint32(index)))
}
