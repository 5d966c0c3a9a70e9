package classmerge

import (
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ConfigPatch is a data-driven extension of a Config, typically decoded from
// a JSON or YAML file shipped next to a host application's own plugin
// classes. Apply merges it into an existing Config; nil/zero fields leave the
// base untouched.
//
// Definition entries in patch files use a small surface syntax:
//
//	classGroups:
//	  glow:
//	    - glow                       # literal class path
//	    - classifier: tshirt-size   # named classifier (see ClassifierByName)
//	    - theme: spacing            # splice a theme scale
//	    - glow:                     # nested segments
//	        - soft
//	        - hard
type ConfigPatch struct {
	Prefix                    *string             `json:"prefix" yaml:"prefix"`
	CacheCapacity             *int                `json:"cacheCapacity" yaml:"cacheCapacity"`
	Theme                     map[string][]any    `json:"theme" yaml:"theme"`
	ClassGroups               map[string][]any    `json:"classGroups" yaml:"classGroups"`
	ConflictingGroups         map[string][]string `json:"conflictingGroups" yaml:"conflictingGroups"`
	ConflictingGroupModifiers map[string][]string `json:"conflictingGroupModifiers" yaml:"conflictingGroupModifiers"`
	OrderSensitiveModifiers   []string            `json:"orderSensitiveModifiers" yaml:"orderSensitiveModifiers"`
}

// ExtendFromJSON decodes a ConfigPatch from JSON. Definition entries are
// translated into the same values a hand-written Config would hold; unknown
// classifier names surface as ConfigIssues.
func ExtendFromJSON(data []byte) (ConfigPatch, error) {
	var p ConfigPatch
	if err := gojson.Unmarshal(data, &p); err != nil {
		return ConfigPatch{}, err
	}
	return normalizePatch(p)
}

// ExtendFromYAML decodes a ConfigPatch from YAML.
func ExtendFromYAML(data []byte) (ConfigPatch, error) {
	var p ConfigPatch
	if err := yaml.Unmarshal(data, &p); err != nil {
		return ConfigPatch{}, err
	}
	return normalizePatch(p)
}

// Apply merges p into a copy of c and returns it. Theme values and group
// definitions append to existing entries of the same name, so a patch can
// widen a scale or group without redeclaring it; conflict lists append
// likewise.
func (c Config) Apply(p ConfigPatch) Config {
	if p.Prefix != nil {
		c.Prefix = *p.Prefix
	}
	if p.CacheCapacity != nil {
		c.CacheCapacity = *p.CacheCapacity
	}
	if len(p.Theme) > 0 {
		theme := make(map[string][]any, len(c.Theme)+len(p.Theme))
		for k, v := range c.Theme {
			theme[k] = v
		}
		for k, v := range p.Theme {
			theme[k] = append(append([]any{}, theme[k]...), v...)
		}
		c.Theme = theme
	}
	if len(p.ClassGroups) > 0 {
		groups := make([]ClassGroup, len(c.ClassGroups))
		copy(groups, c.ClassGroups)
		index := make(map[string]int, len(groups))
		for i, grp := range groups {
			index[grp.ID] = i
		}
		for _, id := range sortedKeys(p.ClassGroups) {
			defs := p.ClassGroups[id]
			if i, ok := index[id]; ok {
				merged := append(append([]any{}, groups[i].Defs...), defs...)
				groups[i] = ClassGroup{ID: id, Defs: merged}
				continue
			}
			groups = append(groups, ClassGroup{ID: id, Defs: defs})
		}
		c.ClassGroups = groups
	}
	c.ConflictingGroups = mergeConflicts(c.ConflictingGroups, p.ConflictingGroups)
	c.ConflictingGroupModifiers = mergeConflicts(c.ConflictingGroupModifiers, p.ConflictingGroupModifiers)
	if len(p.OrderSensitiveModifiers) > 0 {
		c.OrderSensitiveModifiers = append(append([]string{}, c.OrderSensitiveModifiers...), p.OrderSensitiveModifiers...)
	}
	return c
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mergeConflicts(base, extra map[string][]string) map[string][]string {
	if len(extra) == 0 {
		return base
	}
	out := make(map[string][]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = append(append([]string{}, out[k]...), v...)
	}
	return out
}

// normalizePatch rewrites decoded definition entries into builder values:
// scalar strings stay literals, {classifier: name} resolves through the
// registry, {theme: scale} becomes a ThemeRef, and any other map becomes a
// Sub. Decoding problems are reported as ConfigIssues so callers see every
// bad entry at once.
func normalizePatch(p ConfigPatch) (ConfigPatch, error) {
	var iss ConfigIssues
	for _, scale := range sortedKeys(p.Theme) {
		p.Theme[scale] = normalizeDefs("theme/"+scale, p.Theme[scale], &iss)
	}
	for _, id := range sortedKeys(p.ClassGroups) {
		p.ClassGroups[id] = normalizeDefs("classGroups/"+id, p.ClassGroups[id], &iss)
	}
	if len(iss) > 0 {
		return ConfigPatch{}, iss
	}
	return p, nil
}

func normalizeDefs(at string, defs []any, iss *ConfigIssues) []any {
	out := make([]any, 0, len(defs))
	for i, def := range defs {
		out = append(out, normalizeDef(fmt.Sprintf("%s/%d", at, i), def, iss))
	}
	return out
}

func normalizeDef(at string, def any, iss *ConfigIssues) any {
	switch d := def.(type) {
	case string:
		return d
	case map[string]any:
		return normalizeDefMap(at, d, iss)
	case map[any]any:
		// Older YAML decodings produce interface-keyed maps.
		m := make(map[string]any, len(d))
		for k, v := range d {
			ks, ok := k.(string)
			if !ok {
				*iss = append(*iss, ConfigIssue{Path: at, Code: CodeBadDefinition, Message: fmt.Sprintf("non-string key %v", k)})
				continue
			}
			m[ks] = v
		}
		return normalizeDefMap(at, m, iss)
	default:
		*iss = append(*iss, ConfigIssue{Path: at, Code: CodeBadDefinition, Message: fmt.Sprintf("unsupported entry type %T", def)})
		return nil
	}
}

func normalizeDefMap(at string, m map[string]any, iss *ConfigIssues) any {
	if len(m) == 1 {
		if name, ok := m["classifier"].(string); ok {
			fn, known := ClassifierByName(name)
			if !known {
				*iss = append(*iss, ConfigIssue{Path: at, Code: CodeUnknownClassifier, Message: fmt.Sprintf("classifier %q is not registered", name)})
				return nil
			}
			return ClassifierFunc(fn)
		}
		if scale, ok := m["theme"].(string); ok {
			return FromTheme(scale)
		}
	}
	sub := make(Sub, len(m))
	for _, k := range sortedKeys(m) {
		list, ok := m[k].([]any)
		if !ok {
			*iss = append(*iss, ConfigIssue{Path: at + "/" + k, Code: CodeBadDefinition, Message: "nested segment must hold a list"})
			continue
		}
		sub[k] = normalizeDefs(at+"/"+k, list, iss)
	}
	return sub
}
