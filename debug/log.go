package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/symx/ast"
)

// Logf writes a formatted trace line to stderr. Node arguments are printed
// in infix form, maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, map[string]float64:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
