package classmerge

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyGroupID         = "empty_group_id"
	CodeBadDefinition        = "bad_definition"
	CodeUnknownThemeScale    = "unknown_theme_scale"
	CodeUnknownClassifier    = "unknown_classifier"
	CodeUnknownConflictGroup = "unknown_conflict_group"
	CodeBadSeparator         = "bad_separator"
)

// ConfigIssue represents a single problem found while validating or building
// a Config. All issues are construction-time: once New succeeds, the merge
// path never produces errors.
type ConfigIssue struct {
	Path    string // locates the offending entry, e.g. classGroups/p/0 or theme/spacing
	Code    string // one of the codes listed above
	Message string
}

// ConfigIssues is a collection of configuration errors that implements error.
type ConfigIssues []ConfigIssue

// Error summarizes the first few issues.
func (iss ConfigIssues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsConfigIssues extracts ConfigIssues from an error using errors.As internally.
func AsConfigIssues(err error) (ConfigIssues, bool) {
	if err == nil {
		return nil, false
	}
	var iss ConfigIssues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
