// Package classmerge provides:
//
// - Conflict-aware merging of utility-style class lists (Merge/Join)
// - A declarative Config: theme scales, class groups, conflict tables
// - A stable construction-time error model via ConfigIssues (path, code, message)
// - Data-driven vocabulary extension from JSON/YAML patches (ConfigPatch)
//
// Design policy:
// - Keep only public APIs in the root package; the classification trie, the
//   token scanner and the memo cache live under internal/.
// - Validate configuration eagerly in New; the merge path itself never fails,
//   unrecognized or malformed tokens degrade to "always kept".
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	out := classmerge.Merge("px-2 py-1", "px-4") // "py-1 px-4"
//
//	m, err := classmerge.New(cfg)
//	out := m.Merge(componentDefaults, callerOverrides)
package classmerge
