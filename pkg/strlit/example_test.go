package strlit_test

import (
	"fmt"
	"os"

	"github.com/saylorsolutions/strlit/pkg/strlit"
)

func ExampleEncode() {
	lit := strlit.Encode("abc", 42)
	fmt.Println(lit)
	fmt.Println(lit.Reveal())
	// Output:
	// strlit.Literal(3 bytes)
	// abc
}

func ExampleLiteral_WriteTo() {
	lit := strlit.At(strlit.CallSite{File: "main.go", Line: 7}, "streamed marker\n")
	_, _ = lit.WriteTo(os.Stdout)
	// Output:
	// streamed marker
}
