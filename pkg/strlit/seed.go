package strlit

import (
	"path/filepath"
	"runtime"

	"github.com/saylorsolutions/strlit/pkg/xor"
)

// CallSite identifies where a literal was declared.
// Only the first three bytes of File contribute to a seed.
type CallSite struct {
	File string
	Line int
}

// DeriveSeed sums the first three bytes of the site's File with its Line, and applies one step of the key stream recurrence to the result.
// Missing File bytes count as zero.
func DeriveSeed(site CallSite) xor.Seed {
	var sum uint32
	for i := 0; i < 3 && i < len(site.File); i++ {
		sum += uint32(site.File[i])
	}
	sum += uint32(site.Line)
	return xor.Seed(xor.Next(sum))
}

// Caller reports the CallSite of the function skip frames above the caller of Caller.
// The zero CallSite is returned if it can't be determined.
func Caller(skip int) CallSite {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{}
	}
	return CallSite{
		File: filepath.Base(file),
		Line: line,
	}
}
