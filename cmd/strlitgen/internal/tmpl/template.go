package tmpl

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"text/template"
	"unicode"

	"github.com/saylorsolutions/strlit/pkg/xor"
)

var (
	//go:embed strlit_embed.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))
)

type Params struct {
	Package  string
	Source   string
	Literals []LiteralParams

	exposed        bool
	seedMode       SeedMode
	outputDir      string
	onLiteral      func(name string, seed xor.Seed)
	entries        []literalEntry
	targetFileName string
}

// LiteralParams is the rendered form of a single screened literal.
type LiteralParams struct {
	Name string
	Seed string
	Data string
}

// ParamOpt operates on Params in a standard and predictable way, and is used in GenerateFile.
// If any ParamOpt returns an error, then file generation ceases and the error is returned.
type ParamOpt = func(params *Params) error

// ExposeVars indicates that generated variables should be exposed.
func ExposeVars(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.exposed = val[0]
			return nil
		}
		params.exposed = true
		return nil
	}
}

// UseSeedMode sets how seeds are chosen. SeedSite is the default.
func UseSeedMode(mode SeedMode) ParamOpt {
	return func(params *Params) error {
		if _, err := ParseSeedMode(string(mode)); err != nil {
			return err
		}
		params.seedMode = mode
		return nil
	}
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	return func(params *Params) error {
		if len(name) == 0 {
			return nil
		}
		if !validPackageName(name) {
			return fmt.Errorf("invalid package name '%s'", name)
		}
		params.Package = name
		return nil
	}
}

// OutputDir sets the directory the generated file is written to, instead of the current directory.
// Unless PackageName is used, the package name follows the output directory.
func OutputDir(dir string) ParamOpt {
	return func(params *Params) error {
		if len(dir) == 0 {
			return nil
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return err
		}
		params.outputDir = abs
		return nil
	}
}

// OnLiteral registers a function to be called with the name and seed of each literal as it's screened.
// The plain text value is never passed.
func OnLiteral(fn func(name string, seed xor.Seed)) ParamOpt {
	return func(params *Params) error {
		params.onLiteral = fn
		return nil
	}
}

// GenerateFile will generate a Go file declaring a screened strlit.Literal for each literal defined in the input file.
// Various generation options may be passed as zero or more ParamOpt.
// The path of the generated file is returned.
func GenerateFile(input string, opts ...ParamOpt) (string, error) {
	params := new(Params)
	if err := populateContextData(params); err != nil {
		return "", err
	}
	if err := populateFileData(params, input); err != nil {
		return "", err
	}

	for _, opt := range opts {
		if err := opt(params); err != nil {
			return "", err
		}
	}
	if len(params.Package) == 0 {
		params.Package = filepath.Base(params.outputDir)
	}
	if !validPackageName(params.Package) {
		return "", fmt.Errorf("'%s' is not a valid package name, specify one explicitly", params.Package)
	}

	if err := screenLiterals(params); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmplTemplate.Execute(&buf, params); err != nil {
		return "", err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to format generated source: %w", err)
	}

	target := filepath.Join(params.outputDir, params.targetFileName+targetSuffix)
	if err := os.WriteFile(target, src, 0644); err != nil {
		return "", err
	}
	return target, nil
}

func populateContextData(params *Params) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	params.outputDir = cwd
	params.seedMode = SeedSite
	return nil
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// targetSuffix keeps names like foo_test or lits_linux from turning the output into a test or build constrained file.
const targetSuffix = "_strlit.go"

func validPackageName(name string) bool {
	return namePattern.MatchString(name) && name != "_" && !token.IsKeyword(name)
}

func populateFileData(params *Params, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	entries, err := parseLiterals(f)
	if err != nil {
		return fmt.Errorf("failed to read literals from '%s': %w", file, err)
	}
	params.entries = entries
	_, fname := filepath.Split(file)
	params.Source = fname
	params.targetFileName = fileCleansePattern.ReplaceAllString(fname, "_")
	return nil
}

func screenLiterals(params *Params) error {
	seen := map[string]int{}
	params.Literals = make([]LiteralParams, 0, len(params.entries))
	for _, entry := range params.entries {
		name := entry.name
		if params.exposed {
			name = unicap(name)
		}
		if err := validateName(name); err != nil {
			return fmt.Errorf("line %d: %w", entry.line, err)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("line %d: %w '%s', first defined on line %d", entry.line, ErrDuplicateName, name, prev)
		}
		seen[name] = entry.line

		seed, err := params.seedMode.seed(params.Source, entry.line, entry.name)
		if err != nil {
			return err
		}
		data, err := screenData(entry.value, seed)
		if err != nil {
			return err
		}
		params.Literals = append(params.Literals, LiteralParams{
			Name: name,
			Seed: fmt.Sprintf("0x%08x", uint32(seed)),
			Data: fmt.Sprintf("%#v", data),
		})
		if params.onLiteral != nil {
			params.onLiteral(name, seed)
		}
	}
	return nil
}

// screenData screens the value and its zero terminator, matching the layout of strlit.Encode.
func screenData(value string, seed xor.Seed) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xor.NewWriter(&buf, seed)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(append([]byte(value), 0)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}
