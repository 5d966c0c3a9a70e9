package classmerge

import (
	"fmt"
	"strings"
)

// Join flattens its arguments into one space-separated class list without
// resolving conflicts. Arguments may be strings, []string, fmt.Stringer
// values, or nested []any of the same; nil values, empty strings and every
// other type (notably bools, so conditional arguments can collapse to false)
// are silently skipped.
func Join(args ...any) string {
	var b strings.Builder
	for _, arg := range args {
		joinInto(&b, arg)
	}
	return b.String()
}

func joinInto(b *strings.Builder, arg any) {
	switch v := arg.(type) {
	case nil:
	case string:
		writeClass(b, v)
	case []string:
		for _, s := range v {
			writeClass(b, s)
		}
	case []any:
		for _, a := range v {
			joinInto(b, a)
		}
	case fmt.Stringer:
		writeClass(b, v.String())
	}
}

func writeClass(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}
