package classmerge

import (
	"fmt"
	"sort"

	"github.com/reoring/classmerge/internal/classify"
	"github.com/reoring/classmerge/internal/parse"
)

// ClassifierFunc tests a raw payload string against a value category.
type ClassifierFunc func(string) bool

// ThemeRef defers a class-group definition to a named theme scale. The scale
// is expanded fully while the trie is built; classification never consults
// the theme.
type ThemeRef string

// FromTheme references the theme scale with the given name inside a
// class-group definition.
func FromTheme(scale string) ThemeRef { return ThemeRef(scale) }

// Sub nests class-group definitions under further path segments.
type Sub map[string][]any

// ClassGroup declares one class group: its ID and the definitions spanned
// from the class-name root. A definition is a literal string, a Sub, a
// ClassifierFunc (or plain func(string) bool), or a ThemeRef.
type ClassGroup struct {
	ID   string
	Defs []any
}

// ParsedClass is the result of splitting one raw class token.
type ParsedClass = parse.Class

// ParseFunc parses a raw class token. The default implementation is handed
// to a ParseClass hook as its fallback.
type ParseFunc func(raw string) ParsedClass

// Config describes the full merge vocabulary. It is consumed once by New;
// later mutation of a Config has no effect on merger instances built from it.
type Config struct {
	// ModifierSeparator splits variant modifiers from the base class (':').
	ModifierSeparator byte
	// ClassSeparator splits class-name path segments ('-').
	ClassSeparator byte
	// ImportantMarker flags maximum-priority declarations ('!').
	ImportantMarker byte
	// PostfixMarker introduces a postfix modifier ('/').
	PostfixMarker byte
	// Prefix, when non-empty, is required in front of every managed class as
	// Prefix+ModifierSeparator; classes without it are passed through
	// untouched.
	Prefix string
	// CacheCapacity bounds the memo cache. Anything below 1 disables
	// memoization.
	CacheCapacity int
	// Theme maps scale names to definition lists that ThemeRef entries
	// splice in.
	Theme map[string][]any
	// ClassGroups declares every known group.
	ClassGroups []ClassGroup
	// ConflictingGroups lists, per group, the groups it overrides. The
	// relation may be asymmetric; lookups only ever key off the later
	// token's group.
	ConflictingGroups map[string][]string
	// ConflictingGroupModifiers lists extra overrides that apply only when
	// the token carries a postfix modifier.
	ConflictingGroupModifiers map[string][]string
	// OrderSensitiveModifiers never move during modifier canonicalization.
	OrderSensitiveModifiers []string
	// ParseClass optionally replaces token parsing. It receives the raw
	// token and the default parser to delegate to.
	ParseClass func(raw string, fallback ParseFunc) ParsedClass
}

// cfgBuilder walks the declarative group definitions into the trie,
// collecting issues instead of stopping at the first problem.
type cfgBuilder struct {
	trie     *classify.Trie
	theme    map[string][]any
	sep      byte
	visiting map[string]bool
	issues   ConfigIssues
}

func (b *cfgBuilder) walk(path, group, at string, defs []any) {
	for i, def := range defs {
		switch d := def.(type) {
		case string:
			b.trie.Add(b.join(path, d), group)
		case Sub:
			b.walkSub(path, group, at, d)
		case map[string][]any:
			b.walkSub(path, group, at, d)
		case ThemeRef:
			scale := string(d)
			vals, ok := b.theme[scale]
			if !ok {
				b.issue(at, CodeUnknownThemeScale, fmt.Sprintf("theme scale %q is not declared", scale))
				continue
			}
			if b.visiting[scale] {
				b.issue(at, CodeBadDefinition, fmt.Sprintf("theme scale %q references itself", scale))
				continue
			}
			b.visiting[scale] = true
			b.walk(path, group, at+"/theme:"+scale, vals)
			delete(b.visiting, scale)
		case ClassifierFunc:
			b.trie.AddValidator(path, group, d)
		case func(string) bool:
			b.trie.AddValidator(path, group, d)
		default:
			b.issue(fmt.Sprintf("%s/%d", at, i), CodeBadDefinition, fmt.Sprintf("unsupported definition type %T", def))
		}
	}
}

func (b *cfgBuilder) walkSub(path, group, at string, d map[string][]any) {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.walk(b.join(path, k), group, at+"/"+k, d[k])
	}
}

func (b *cfgBuilder) join(path, seg string) string {
	switch {
	case path == "":
		return seg
	case seg == "":
		return path
	default:
		return path + string(b.sep) + seg
	}
}

func (b *cfgBuilder) issue(path, code, msg string) {
	b.issues = append(b.issues, ConfigIssue{Path: path, Code: code, Message: msg})
}
