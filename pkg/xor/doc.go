/*
Package xor provides the key stream used to screen string literals, along with io wrappers that apply it.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
It's useful for keeping plain text out of a compiled binary, so that tools like strings don't find it.

# How it works:

A Seed parameterizes a linear congruential recurrence:

	Next(x) = x * 1103515245 + 12345 (mod 2^32)

The key byte for index i is the low 8 bits of Next(seed + i).
Each byte passing through Reader or Writer is XOR'd with the key byte of its position, and the position advances by one.

Providing an offset will make the screen start at the given index instead of 0.

# Important note:

The same seed and offset must be provided to accurately reverse the process.
Failing to do so will result in garbled data, and nothing detects that.
The seed is expected to be stored next to the screened data, so the threat model is passive inspection only.
*/
package xor
