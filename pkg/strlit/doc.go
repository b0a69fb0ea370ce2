/*
Package strlit keeps string literals out of plain sight in a compiled binary.

A Literal stores the XOR screened bytes of a string together with the seed of the key stream that screened them.
The plain text is reconstructed only when Reveal (or Bytes, or WriteTo) is called, and every call returns a newly allocated copy.

This is obfuscation, not encryption.
The seed is stored next to the screened data, so anyone with the binary and knowledge of the algorithm can recover the text.
It only defeats passive inspection like running strings against the binary.

# Build time vs. init time:

Go can't run functions at compile time, so there are two ways to produce a Literal:
  - Generate source with the strlitgen command (pairs well with go:generate). The generated file contains only screened bytes and seeds, which keeps the plain text out of the binary entirely.
  - Call New, At, or Encode in a package level var. The literal is screened once during package initialization. This has the same properties at run time, but the original string constant is still present in the binary's read-only data.

# Seeds:

By default the seed is derived from the call site: the first three bytes of the file name plus the line number, put through one step of the key stream recurrence.
Two call sites with the same three byte file prefix and line number will share a seed, which is fine for this purpose.
Any other seed works as long as it's stored with the screened bytes, which Literal always does.
*/
package strlit
