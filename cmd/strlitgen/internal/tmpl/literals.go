package tmpl

import (
	"bufio"
	"errors"
	"fmt"
	"go/token"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidName   = errors.New("invalid literal name")
	ErrDuplicateName = errors.New("duplicate literal name")
	ErrNoLiterals    = errors.New("no literals defined")
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

const maxLineLen = 1024 * 1024

// reservedNames can't be declared as package level vars in the generated file.
var reservedNames = map[string]bool{
	"init":   true,
	"strlit": true,
}

// validateName reports whether name can be declared as a package level var in the generated file.
func validateName(name string) error {
	if !namePattern.MatchString(name) || token.IsKeyword(name) || reservedNames[name] {
		return fmt.Errorf("%w '%s'", ErrInvalidName, name)
	}
	return nil
}

type literalEntry struct {
	name  string
	value string
	line  int
}

// parseLiterals reads Name=value lines.
// Blank lines and lines starting with # are skipped.
// A value starting with a double quote (after leading space) is unquoted as a Go string literal, anything else is taken verbatim.
func parseLiterals(r io.Reader) ([]literalEntry, error) {
	var (
		entries []literalEntry
		lineNum int
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLen)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "#") {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("line %d: expected Name=value", lineNum)
		}
		name = strings.TrimSpace(name)
		if err := validateName(name); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if quoted := strings.TrimSpace(value); strings.HasPrefix(quoted, `"`) {
			unquoted, err := strconv.Unquote(quoted)
			if err != nil {
				return nil, fmt.Errorf("line %d: malformed quoted value: %w", lineNum, err)
			}
			value = unquoted
		}
		entries = append(entries, literalEntry{
			name:  name,
			value: value,
			line:  lineNum,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoLiterals
	}
	return entries, nil
}
