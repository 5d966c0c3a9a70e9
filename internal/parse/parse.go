// Package parse splits raw utility-class tokens into their structural parts:
// variant modifiers, the important marker, the base class name and an optional
// postfix-modifier cut. It is a single left-to-right scan with no allocation
// beyond the modifier slice; all characters that are syntactically significant
// at the top level lose that significance inside bracketed or parenthesized
// arbitrary values.
package parse

import (
	"sort"
	"strings"
)

// Options carries the separator characters and the optional fixed prefix the
// scanner honours. The zero value is not meaningful; callers fill every field.
type Options struct {
	ModSeparator    byte // splits variant modifiers, typically ':'
	PostfixMarker   byte // introduces a postfix modifier, typically '/'
	ImportantMarker byte // the important flag, typically '!'
	Prefix          string
}

// Class is one parsed utility-class token.
type Class struct {
	// Modifiers holds the variant modifiers in their original order.
	Modifiers []string
	// Important reports whether the token carried the important marker, in
	// either the trailing or the legacy leading position.
	Important bool
	// Base is the class name with modifiers, prefix and important marker
	// stripped.
	Base string
	// PostfixCut is the index within Base of the last top-level postfix
	// marker, or -1 when the token has none.
	PostfixCut int
	// External marks tokens that do not carry the configured prefix. They
	// are returned otherwise unparsed and must survive merging untouched.
	External bool
}

// Split scans raw according to opt. It never fails: malformed input (for
// example unbalanced brackets) simply yields a Class whose Base is whatever
// remained after the last recognized modifier.
func Split(raw string, opt Options) Class {
	if opt.Prefix != "" {
		full := opt.Prefix + string(opt.ModSeparator)
		if !strings.HasPrefix(raw, full) {
			return Class{Base: raw, PostfixCut: -1, External: true}
		}
		raw = raw[len(full):]
	}

	var modifiers []string
	bracketDepth := 0
	parenDepth := 0
	modifierStart := 0
	postfixPos := -1

	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case bracketDepth == 0 && parenDepth == 0 && c == opt.ModSeparator:
			modifiers = append(modifiers, raw[modifierStart:i])
			modifierStart = i + 1
		case bracketDepth == 0 && parenDepth == 0 && c == opt.PostfixMarker:
			postfixPos = i
		case c == '[':
			bracketDepth++
		case c == ']':
			bracketDepth--
		case c == '(':
			parenDepth++
		case c == ')':
			parenDepth--
		}
	}

	base := raw[modifierStart:]
	important := false
	if n := len(base); n > 0 && base[n-1] == opt.ImportantMarker {
		important = true
		base = base[:n-1]
	} else if n > 0 && base[0] == opt.ImportantMarker {
		// Legacy position, kept for inputs written against the old syntax.
		important = true
		base = base[1:]
	}

	cut := -1
	if postfixPos > modifierStart {
		cut = postfixPos - modifierStart
	}
	return Class{
		Modifiers:  modifiers,
		Important:  important,
		Base:       base,
		PostfixCut: cut,
	}
}

// SortModifiers canonicalizes a modifier list so that tokens differing only in
// the order of position-insensitive modifiers compare equal. Runs of ordinary
// modifiers are sorted lexicographically; a modifier that is arbitrary (leads
// with '[') or for which pinned returns true keeps its exact position and
// terminates the run around it.
func SortModifiers(modifiers []string, pinned func(string) bool) []string {
	if len(modifiers) <= 1 {
		return modifiers
	}
	sorted := make([]string, 0, len(modifiers))
	var run []string
	flush := func() {
		sort.Strings(run)
		sorted = append(sorted, run...)
		run = run[:0]
	}
	for _, m := range modifiers {
		if m != "" && (m[0] == '[' || pinned(m)) {
			flush()
			sorted = append(sorted, m)
			continue
		}
		run = append(run, m)
	}
	flush()
	return sorted
}
