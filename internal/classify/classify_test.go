package classify

import (
	"strconv"
	"testing"
)

func isNumber(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

func TestLiteralPaths(t *testing.T) {
	tr := New('-')
	tr.Add("block", "display")
	tr.Add("inline-block", "display")
	tr.Add("float-left", "float")

	for base, want := range map[string]string{
		"block":        "display",
		"inline-block": "display",
		"float-left":   "float",
	} {
		got, ok := tr.Classify(base)
		if !ok || got != want {
			t.Fatalf("Classify(%q) = %q ok=%v, want %q", base, got, ok, want)
		}
	}
	if _, ok := tr.Classify("inline"); ok {
		t.Fatalf("pass-through node must not classify")
	}
}

func TestValidatorOnRemainingSuffix(t *testing.T) {
	tr := New('-')
	tr.AddValidator("p", "p", isNumber)

	if got, ok := tr.Classify("p-4"); !ok || got != "p" {
		t.Fatalf("Classify(p-4) = %q ok=%v", got, ok)
	}
	// The validator sees the rejoined suffix, not a single segment.
	tr.AddValidator("m", "m", func(s string) bool { return s == "x-large" })
	if got, ok := tr.Classify("m-x-large"); !ok || got != "m" {
		t.Fatalf("Classify(m-x-large) = %q ok=%v", got, ok)
	}
	if _, ok := tr.Classify("p-abc"); ok {
		t.Fatalf("validator rejection must not classify")
	}
}

func TestDeepLiteralBeatsShallowValidator(t *testing.T) {
	tr := New('-')
	tr.AddValidator("text", "text-color", func(string) bool { return true })
	tr.Add("text-center", "text-alignment")

	if got, _ := tr.Classify("text-center"); got != "text-alignment" {
		t.Fatalf("expected deepest literal match, got %q", got)
	}
	if got, _ := tr.Classify("text-red-500"); got != "text-color" {
		t.Fatalf("expected validator fallback, got %q", got)
	}
}

func TestBacktracksToIntermediateValidators(t *testing.T) {
	tr := New('-')
	// "a-b-c" creates a pass-through node at a-b; descent for a-b-x reaches
	// it, fails, and must still retry the validator registered at "a".
	tr.Add("a-b-c", "deep")
	tr.AddValidator("a", "va", func(s string) bool { return s == "b-x" })

	if got, ok := tr.Classify("a-b-x"); !ok || got != "va" {
		t.Fatalf("Classify(a-b-x) = %q ok=%v, want va", got, ok)
	}
	if got, _ := tr.Classify("a-b-c"); got != "deep" {
		t.Fatalf("literal descent broken: got %q", got)
	}
}

func TestValidatorOrderFirstMatchWins(t *testing.T) {
	tr := New('-')
	tr.AddValidator("text", "font-size", func(s string) bool { return s == "sm" })
	tr.AddValidator("text", "text-color", func(string) bool { return true })

	if got, _ := tr.Classify("text-sm"); got != "font-size" {
		t.Fatalf("expected first registered validator to win, got %q", got)
	}
	if got, _ := tr.Classify("text-red"); got != "text-color" {
		t.Fatalf("expected fallthrough to second validator, got %q", got)
	}
}

func TestLeadingSeparatorForNegativeValues(t *testing.T) {
	tr := New('-')
	tr.AddValidator("inset", "inset", isNumber)

	if got, ok := tr.Classify("-inset-4"); !ok || got != "inset" {
		t.Fatalf("Classify(-inset-4) = %q ok=%v", got, ok)
	}
}

func TestArbitraryProperty(t *testing.T) {
	if got, ok := ArbitraryProperty("[mask-type:luminance]"); !ok || got != "arbitrary..mask-type" {
		t.Fatalf("ArbitraryProperty = %q ok=%v", got, ok)
	}
	for _, base := range []string{"[mask-type]", "mask-type:luminance", "[:broken]", "[]"} {
		if _, ok := ArbitraryProperty(base); ok {
			t.Fatalf("%q must not synthesize a group", base)
		}
	}

	tr := New('-')
	if got, ok := tr.Classify("[mask-type:alpha]"); !ok || got != "arbitrary..mask-type" {
		t.Fatalf("Classify must fall back to arbitrary properties, got %q ok=%v", got, ok)
	}
}
