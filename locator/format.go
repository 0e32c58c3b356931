package locator

import (
	"strings"

	"github.com/poiesic/locate/core"
)

// Render writes q back in locator syntax. Parsing the result yields a query
// equal to q as long as q has no children, which the grammar cannot express.
func Render(q *core.Query) string {
	var b strings.Builder
	params := q.Parameters()

	b.WriteString("By.")
	b.WriteString(q.Type().NormalizedKey())
	b.WriteString("(")
	b.WriteString(params.Value)
	b.WriteString(")")
	if params.Visibility != core.Visible {
		b.WriteString(":")
		b.WriteString(strings.ToLower(params.Visibility.String()))
	}

	first := true
	for _, f := range q.Filters() {
		for _, v := range f.Values {
			if first {
				b.WriteString(filterSeparator)
				first = false
			} else {
				b.WriteString(".")
			}
			b.WriteString(f.Type.NormalizedKey())
			b.WriteString("(")
			b.WriteString(v)
			b.WriteString(")")
		}
	}
	return b.String()
}
