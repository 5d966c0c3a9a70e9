package classmerge_test

import (
	"strings"
	"testing"

	classmerge "github.com/reoring/classmerge"
)

func TestNewReportsConfigIssues(t *testing.T) {
	cfg := classmerge.DefaultConfig()
	cfg.ClassGroups = append(cfg.ClassGroups,
		classmerge.ClassGroup{ID: "", Defs: []any{"x"}},
		classmerge.ClassGroup{ID: "bad-theme", Defs: []any{classmerge.FromTheme("no-such-scale")}},
		classmerge.ClassGroup{ID: "bad-def", Defs: []any{42}},
	)
	cfg.ConflictingGroups["bad-theme"] = []string{"undeclared-target"}

	_, err := classmerge.New(cfg)
	if err == nil {
		t.Fatalf("expected configuration issues")
	}
	iss, ok := classmerge.AsConfigIssues(err)
	if !ok {
		t.Fatalf("error is not ConfigIssues: %v", err)
	}
	codes := make(map[string]bool)
	for _, it := range iss {
		codes[it.Code] = true
	}
	for _, want := range []string{
		classmerge.CodeEmptyGroupID,
		classmerge.CodeUnknownThemeScale,
		classmerge.CodeBadDefinition,
		classmerge.CodeUnknownConflictGroup,
	} {
		if !codes[want] {
			t.Fatalf("missing issue code %q in %v", want, iss)
		}
	}
	if iss.Error() == "" || !strings.Contains(iss.Error(), "total") {
		t.Fatalf("expected truncated summary, got %q", iss.Error())
	}
}

func TestNewRejectsZeroSeparators(t *testing.T) {
	_, err := classmerge.New(classmerge.Config{})
	iss, ok := classmerge.AsConfigIssues(err)
	if !ok {
		t.Fatalf("expected ConfigIssues, got %v", err)
	}
	if iss[0].Code != classmerge.CodeBadSeparator {
		t.Fatalf("expected %s, got %+v", classmerge.CodeBadSeparator, iss[0])
	}
}

func TestNewRejectsThemeCycle(t *testing.T) {
	cfg := classmerge.DefaultConfig()
	cfg.Theme["loop"] = []any{classmerge.FromTheme("loop")}
	cfg.ClassGroups = append(cfg.ClassGroups,
		classmerge.ClassGroup{ID: "looper", Defs: []any{classmerge.Sub{"looper": {classmerge.FromTheme("loop")}}}})

	_, err := classmerge.New(cfg)
	iss, ok := classmerge.AsConfigIssues(err)
	if !ok {
		t.Fatalf("expected ConfigIssues, got %v", err)
	}
	found := false
	for _, it := range iss {
		if it.Code == classmerge.CodeBadDefinition {
			found = true
		}
	}
	if !found {
		t.Fatalf("cycle not reported: %v", iss)
	}
}

func TestPrefixedMerger(t *testing.T) {
	cfg := classmerge.DefaultConfig()
	cfg.Prefix = "tw"
	m, err := classmerge.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cases := map[string]string{
		"tw:p-2 tw:p-4": "tw:p-4",
		// Unprefixed classes are external: untouched, never merged.
		"tw:p-2 p-4":                "tw:p-2 p-4",
		"p-2 p-4":                   "p-2 p-4",
		"tw:hover:p-2 tw:hover:p-4": "tw:hover:p-4",
	}
	for in, want := range cases {
		if got := m.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseClassHook(t *testing.T) {
	cfg := classmerge.DefaultConfig()
	cfg.ParseClass = func(raw string, fallback classmerge.ParseFunc) classmerge.ParsedClass {
		if strings.HasPrefix(raw, "ext-") {
			return classmerge.ParsedClass{Base: raw, PostfixCut: -1, External: true}
		}
		return fallback(raw)
	}
	m, err := classmerge.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// ext- classes bypass conflict resolution entirely; the rest keep the
	// default behavior via the fallback.
	if got := m.Merge("ext-p-2 p-2 p-4"); got != "ext-p-2 p-4" {
		t.Fatalf("got %q", got)
	}
}

func TestCacheTransparency(t *testing.T) {
	cfg := classmerge.DefaultConfig()
	cfg.CacheCapacity = 1 // rotate on nearly every insert
	m, err := classmerge.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	inputs := []string{"p-2 p-4", "m-1 m-2", "p-2 p-4", "w-1", "p-2 p-4"}
	want := map[string]string{"p-2 p-4": "p-4", "m-1 m-2": "m-2", "w-1": "w-1"}
	for round := 0; round < 3; round++ {
		for _, in := range inputs {
			if got := m.Merge(in); got != want[in] {
				t.Fatalf("round %d: Merge(%q) = %q, want %q", round, in, got, want[in])
			}
		}
	}

	cfg.CacheCapacity = 0 // disabled cache must not change results either
	m2, err := classmerge.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for in, w := range want {
		if got := m2.Merge(in); got != w {
			t.Fatalf("uncached Merge(%q) = %q, want %q", in, got, w)
		}
	}
}

func TestMergerSharedAcrossGoroutines(t *testing.T) {
	m, err := classmerge.New(classmerge.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				if got := m.Merge("px-2 px-4"); got != "px-4" {
					t.Errorf("got %q", got)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
