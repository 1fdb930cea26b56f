package encode

import (
	"strings"

	"github.com/signadot/symx/ast"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders the change from one expression to the next inline, with
// deletions as [-...-] and insertions as {+...+}. A nil c leaves the
// markers uncoloured.
func Diff(from, to string, c *Colors) string {
	if c == nil {
		c = &Colors{Default: colorDefault}
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		case diffpatch.DiffDelete:
			b.WriteString(c.Color(ast.ConstantKind, DeleteColor, "[-"+diff.Text+"-]"))
		case diffpatch.DiffInsert:
			b.WriteString(c.Color(ast.ConstantKind, InsertColor, "{+"+diff.Text+"+}"))
		}
	}
	return b.String()
}
