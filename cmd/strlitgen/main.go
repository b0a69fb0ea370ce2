package main

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/strlit/cmd/internal"
	"github.com/saylorsolutions/strlit/cmd/strlitgen/internal/tmpl"
	"github.com/saylorsolutions/strlit/pkg/xor"
	flag "github.com/spf13/pflag"
)

var version = "dev"

func main() {
	var (
		helpFlag     bool
		versionFlag  bool
		exposedFlag  bool
		verboseFlag  bool
		packageFlag  string
		outputFlag   string
		seedModeFlag string
	)
	flags := flag.NewFlagSet("strlitgen", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version of strlitgen.")
	flags.BoolVarP(&exposedFlag, "exposed", "E", false, "Make the generated variables exposed from the package. It's recommended to only expose from within an internal package.")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Print the name and seed of each generated literal. Values are never printed.")
	flags.StringVarP(&packageFlag, "package", "p", "", "Package name of the generated file. Defaults to the name of the output directory.")
	flags.StringVarP(&outputFlag, "output", "o", ".", "Directory to write the generated file to.")
	flags.StringVarP(&seedModeFlag, "seed-mode", "s", string(tmpl.SeedSite), "How seeds are chosen: 'site' derives them from the file name and line, 'hash' uses a BLAKE2s digest of the file name, line, and name, 'random' uses the OS entropy pool.")
	flags.Usage = func() {
		fmt.Printf(`
strlitgen generates code to embed XOR screened string literals by generating a *.go file based on the input file. This pairs well with go:generate comments.
The name of the generated Go file will be based on the name of the input file, replacing characters that match the regex pattern [^a-zA-Z0-9_] with "_" and appending "_strlit.go".
For example, given a file called debug-markers.txt, a Go file will be created in the output directory called debug_markers_txt_strlit.go, declaring a strlit.Literal variable for each literal in the file.
See the -E flag below to make them exposed variables, and make sure you review the SECURITY notes below if you're unfamiliar with XOR screening.

USAGE:  strlitgen [FLAGS] FILE

ARGS:
    FILE is the input file with one literal per line, formatted as Name=value.
    Names must be valid Go identifiers, and can't be a Go keyword, init, or strlit.
    Blank lines and lines starting with # are ignored.
    A value starting with a double quote is read as a Go quoted string, otherwise it's taken exactly as written.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
XOR screening is intended to hide embedded strings from passive binary analysis only, since XOR screening is easily reversible.
The seed for each literal is stored right next to the screened data, and the key stream algorithm is public.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		internal.Echo("strlitgen %s", version)
		return
	}

	mode, err := tmpl.ParseSeedMode(seedModeFlag)
	if err != nil {
		internal.Fatal("Invalid seed mode: %v", err)
	}

	switch flags.NArg() {
	case 0:
		internal.Fatal("Missing required FILE argument")
	case 1:
		opts := []tmpl.ParamOpt{
			tmpl.ExposeVars(exposedFlag),
			tmpl.OutputDir(outputFlag),
			tmpl.PackageName(packageFlag),
			tmpl.UseSeedMode(mode),
		}
		if verboseFlag {
			opts = append(opts, tmpl.OnLiteral(func(name string, seed xor.Seed) {
				internal.Echo("Screened %s with seed 0x%08x", name, uint32(seed))
			}))
		}
		out, err := tmpl.GenerateFile(flags.Arg(0), opts...)
		if err != nil {
			internal.Fatal("Failed to generate file: %v", err)
		}
		if verboseFlag {
			internal.Echo("Generated %s", out)
		}
	default:
		internal.Fatal("Expected exactly one FILE argument, got %d", flags.NArg())
	}
}
