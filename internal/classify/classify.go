// Package classify maps a base utility-class name to the ID of the class group
// that owns it. Classification runs over a trie keyed on class-name path
// segments; the trie is built once from the declarative configuration and is
// read-only afterwards, so lookups need no synchronization.
package classify

import "strings"

// arbitraryGroupPrefix namespaces groups synthesized for arbitrary-property
// declarations so they can never collide with configured group IDs.
const arbitraryGroupPrefix = "arbitrary.."

// Validator tests the unconsumed suffix of a class name against a value
// category on behalf of a group.
type Validator struct {
	Group string
	Test  func(string) bool
}

type node struct {
	children   map[string]*node
	validators []Validator
	group      string
}

// Trie is the class-group classification tree. Build it with New/Add and treat
// it as immutable once classification starts.
type Trie struct {
	root node
	sep  byte
}

// New returns an empty trie whose paths split on sep.
func New(sep byte) *Trie {
	return &Trie{sep: sep}
}

// Add registers a literal class path for group. An empty path marks the root
// itself, which happens for groups whose sole class is the group's own name
// (the caller has already consumed that name as a leading segment).
func (t *Trie) Add(path, group string) {
	t.descend(path).group = group
}

// AddValidator appends a (group, predicate) pair to the node at path. Order of
// registration is preserved; the first matching predicate wins at classify
// time.
func (t *Trie) AddValidator(path, group string, test func(string) bool) {
	n := t.descend(path)
	n.validators = append(n.validators, Validator{Group: group, Test: test})
}

func (t *Trie) descend(path string) *node {
	n := &t.root
	if path == "" {
		return n
	}
	for _, seg := range strings.Split(path, string(t.sep)) {
		child, ok := n.children[seg]
		if !ok {
			child = &node{}
			if n.children == nil {
				n.children = make(map[string]*node)
			}
			n.children[seg] = child
		}
		n = child
	}
	return n
}

// Classify resolves base to its group ID. Literal descent is attempted first
// and the deepest full-path match wins; when descent dead-ends, validators are
// retried at every node along the unwound path against the suffix that node
// did not consume. Arbitrary-property declarations ([prop:value]) classify
// without touching the trie at all.
func (t *Trie) Classify(base string) (string, bool) {
	parts := strings.Split(base, string(t.sep))
	// A leading separator (negative values such as -inset-1) produces an
	// empty head segment; drop it unless the whole name is the separator.
	if len(parts) > 1 && parts[0] == "" {
		parts = parts[1:]
	}
	if g := t.classifyParts(&t.root, parts); g != "" {
		return g, true
	}
	if g, ok := ArbitraryProperty(base); ok {
		return g, true
	}
	return "", false
}

func (t *Trie) classifyParts(n *node, parts []string) string {
	if len(parts) == 0 {
		return n.group
	}
	if child, ok := n.children[parts[0]]; ok {
		if g := t.classifyParts(child, parts[1:]); g != "" {
			return g
		}
	}
	if len(n.validators) == 0 {
		return ""
	}
	rest := strings.Join(parts, string(t.sep))
	for _, v := range n.validators {
		if v.Test(rest) {
			return v.Group
		}
	}
	return ""
}

// ArbitraryProperty recognizes bracket-wrapped free-form declarations and
// synthesizes a group keyed on the declared property name, so that
// [mask-type:luminance] conflicts with later [mask-type:alpha] but with
// nothing else.
func ArbitraryProperty(base string) (string, bool) {
	if len(base) < 2 || base[0] != '[' || base[len(base)-1] != ']' {
		return "", false
	}
	inner := base[1 : len(base)-1]
	colon := strings.IndexByte(inner, ':')
	if colon <= 0 {
		return "", false
	}
	return arbitraryGroupPrefix + inner[:colon], true
}
