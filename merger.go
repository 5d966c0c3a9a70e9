package classmerge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/classmerge/internal/cache"
	"github.com/reoring/classmerge/internal/classify"
	"github.com/reoring/classmerge/internal/parse"
)

// Merger resolves class-list conflicts against one built vocabulary. It is
// immutable after New except for the memo cache, which synchronizes itself,
// so a single Merger may be shared across goroutines.
type Merger struct {
	trie             *classify.Trie
	conflicts        map[string][]string
	postfixConflicts map[string][]string
	orderSensitive   map[string]bool
	parseClass       ParseFunc
	memo             *cache.Cache[string, string]
	modSep           string
	important        string
}

// New validates cfg, builds the classification trie and returns a ready
// merger. Every configuration problem is reported; on any issue the returned
// error is a ConfigIssues value and the merger is nil.
func New(cfg Config) (*Merger, error) {
	b := &cfgBuilder{
		trie:     classify.New(cfg.ClassSeparator),
		theme:    cfg.Theme,
		sep:      cfg.ClassSeparator,
		visiting: make(map[string]bool),
	}
	if cfg.ModifierSeparator == 0 || cfg.ClassSeparator == 0 || cfg.ImportantMarker == 0 || cfg.PostfixMarker == 0 {
		b.issue("separators", CodeBadSeparator, "modifier/class separators and the important/postfix markers must all be set")
	}

	declared := make(map[string]bool, len(cfg.ClassGroups))
	for _, g := range cfg.ClassGroups {
		if g.ID == "" {
			b.issue("classGroups", CodeEmptyGroupID, "class group with empty ID")
			continue
		}
		declared[g.ID] = true
	}
	for _, g := range cfg.ClassGroups {
		if g.ID == "" {
			continue
		}
		b.walk("", g.ID, "classGroups/"+g.ID, g.Defs)
	}
	checkConflicts := func(at string, table map[string][]string) {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !declared[k] {
				b.issue(at+"/"+k, CodeUnknownConflictGroup, fmt.Sprintf("group %q is not declared", k))
			}
			for _, target := range table[k] {
				if !declared[target] {
					b.issue(at+"/"+k, CodeUnknownConflictGroup, fmt.Sprintf("conflict target %q is not declared", target))
				}
			}
		}
	}
	checkConflicts("conflictingGroups", cfg.ConflictingGroups)
	checkConflicts("conflictingGroupModifiers", cfg.ConflictingGroupModifiers)
	if len(b.issues) > 0 {
		return nil, b.issues
	}

	m := &Merger{
		trie:             b.trie,
		conflicts:        cfg.ConflictingGroups,
		postfixConflicts: cfg.ConflictingGroupModifiers,
		orderSensitive:   make(map[string]bool, len(cfg.OrderSensitiveModifiers)),
		memo:             cache.New[string, string](cfg.CacheCapacity),
		modSep:           string(cfg.ModifierSeparator),
		important:        string(cfg.ImportantMarker),
	}
	for _, mod := range cfg.OrderSensitiveModifiers {
		m.orderSensitive[mod] = true
	}

	opt := parse.Options{
		ModSeparator:    cfg.ModifierSeparator,
		PostfixMarker:   cfg.PostfixMarker,
		ImportantMarker: cfg.ImportantMarker,
		Prefix:          cfg.Prefix,
	}
	defaultParse := func(raw string) ParsedClass { return parse.Split(raw, opt) }
	m.parseClass = defaultParse
	if hook := cfg.ParseClass; hook != nil {
		m.parseClass = func(raw string) ParsedClass { return hook(raw, defaultParse) }
	}
	return m, nil
}

// Merge flattens its arguments like Join and then resolves conflicts so that
// for every class group under a given modifier context only the rightmost
// token survives. Unrecognized tokens always survive.
func (m *Merger) Merge(args ...any) string {
	joined := Join(args...)
	if joined == "" {
		return ""
	}
	if out, ok := m.memo.Get(joined); ok {
		return out
	}
	out := m.mergeClassList(joined)
	m.memo.Set(joined, out)
	return out
}

// Join flattens without resolving conflicts; exposed on the merger for
// symmetry with Merge.
func (m *Merger) Join(args ...any) string { return Join(args...) }

// mergeClassList walks tokens right to left. A token is dropped when its
// (modifier signature, group) key, or any key it conflicts with, was already
// claimed by a token further right; later tokens therefore always win.
func (m *Merger) mergeClassList(classList string) string {
	tokens := strings.Fields(classList)
	claimed := make(map[string]struct{}, len(tokens))
	kept := make([]string, 0, len(tokens))

	for i := len(tokens) - 1; i >= 0; i-- {
		raw := tokens[i]
		pc := m.parseClass(raw)
		if pc.External {
			kept = append(kept, raw)
			continue
		}

		hasPostfix := pc.PostfixCut >= 0 && pc.PostfixCut <= len(pc.Base)
		var group string
		var ok bool
		if hasPostfix {
			group, ok = m.trie.Classify(pc.Base[:pc.PostfixCut])
			if !ok {
				// The slash was part of the class value, not a postfix
				// modifier (e.g. an unconfigured fraction utility).
				group, ok = m.trie.Classify(pc.Base)
				hasPostfix = false
			}
		} else {
			group, ok = m.trie.Classify(pc.Base)
		}
		if !ok {
			kept = append(kept, raw)
			continue
		}

		sig := strings.Join(parse.SortModifiers(pc.Modifiers, m.isOrderSensitive), m.modSep)
		if pc.Important {
			sig += m.important
		}
		key := sig + group
		if _, dup := claimed[key]; dup {
			continue
		}
		claimed[key] = struct{}{}
		for _, cg := range m.conflicts[group] {
			claimed[sig+cg] = struct{}{}
		}
		if hasPostfix {
			for _, cg := range m.postfixConflicts[group] {
				claimed[sig+cg] = struct{}{}
			}
		}
		kept = append(kept, raw)
	}

	// kept was filled right to left; reverse to restore source order.
	for l, r := 0, len(kept)-1; l < r; l, r = l+1, r-1 {
		kept[l], kept[r] = kept[r], kept[l]
	}
	return strings.Join(kept, " ")
}

func (m *Merger) isOrderSensitive(mod string) bool { return m.orderSensitive[mod] }
