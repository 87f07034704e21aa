package term

import (
	"strings"

	"github.com/go-bicheck/bicheck/types"
)

// String returns a syntactic rendering of t, e.g. "\x. x : forall a. a -> a".
func String(t Term) string {
	var b strings.Builder
	writeTerm(&b, t, false)
	return b.String()
}

func writeTerm(b *strings.Builder, t Term, paren bool) {
	switch t := t.(type) {
	case Unit:
		b.WriteString("()")
	case Var:
		b.WriteString(t.Name)
	case *Abs:
		if paren {
			b.WriteByte('(')
		}
		b.WriteString(`\`)
		b.WriteString(t.Arg)
		b.WriteString(". ")
		writeTerm(b, t.Body, false)
		if paren {
			b.WriteByte(')')
		}
	case *App:
		if paren {
			b.WriteByte('(')
		}
		writeTerm(b, t.Fn, true)
		b.WriteByte(' ')
		writeTerm(b, t.Arg, true)
		if paren {
			b.WriteByte(')')
		}
	case *Ann:
		if paren {
			b.WriteByte('(')
		}
		writeTerm(b, t.Body, true)
		b.WriteString(" : ")
		b.WriteString(types.String(t.Declared))
		if paren {
			b.WriteByte(')')
		}
	case *Let:
		if paren {
			b.WriteByte('(')
		}
		b.WriteString("let ")
		b.WriteString(t.Name)
		b.WriteString(" = ")
		writeTerm(b, t.Bound, false)
		b.WriteString(" in ")
		writeTerm(b, t.Body, false)
		if paren {
			b.WriteByte(')')
		}
	}
}
