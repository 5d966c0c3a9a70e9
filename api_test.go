package classmerge_test

import (
	"testing"

	classmerge "github.com/reoring/classmerge"
)

func TestMergeLastWinsPerGroup(t *testing.T) {
	cases := map[string]string{
		"px-2 px-4":                     "px-4",
		"p-2 p-4":                       "p-4",
		"text-red-500 text-blue-500":    "text-blue-500",
		"bg-red-500 bg-[#b91c1c]":       "bg-[#b91c1c]",
		"block inline-flex":             "inline-flex",
		"rounded-lg rounded-full":       "rounded-full",
		"overflow-auto overflow-hidden": "overflow-hidden",
	}
	for in, want := range cases {
		if got := classmerge.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeConflictTable(t *testing.T) {
	cases := map[string]string{
		// A later shorthand suppresses earlier longhands, not vice versa.
		"px-4 p-2":                        "p-2",
		"p-2 px-4":                        "p-2 px-4",
		"mt-2 mr-2 m-4":                   "m-4",
		"inset-x-2 inset-1":               "inset-1",
		"right-2 inset-x-1":               "inset-x-1",
		"w-4 h-5 size-6":                  "size-6",
		"size-6 w-4":                      "size-6 w-4",
		"overflow-x-auto overflow-hidden": "overflow-hidden",
	}
	for in, want := range cases {
		if got := classmerge.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeModifierIndependence(t *testing.T) {
	cases := map[string]string{
		"hover:text-red-500 text-blue-500":    "hover:text-red-500 text-blue-500",
		"dark:p-2 p-4":                        "dark:p-2 p-4",
		"hover:p-2 hover:p-4":                 "hover:p-4",
		"dark:hover:p-2 hover:dark:p-4":       "hover:dark:p-4",
		"focus:hover:p-2 hover:focus:p-4 p-1": "hover:focus:p-4 p-1",
		"md:text-sm lg:text-lg md:text-base":  "lg:text-lg md:text-base",
	}
	for in, want := range cases {
		if got := classmerge.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeOrderSensitiveModifiersNotCanonicalized(t *testing.T) {
	// before/hover and hover/before differ in behavior, so both survive.
	in := "hover:before:p-2 before:hover:p-4"
	if got := classmerge.Merge(in); got != in {
		t.Fatalf("Merge(%q) = %q, want unchanged", in, got)
	}
}

func TestMergeImportantIsSeparateState(t *testing.T) {
	cases := map[string]string{
		"p-2! p-4!": "p-4!",
		"p-2! p-4":  "p-2! p-4",
		"!p-2 p-4!": "p-4!",
	}
	for in, want := range cases {
		if got := classmerge.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeOrderPreservation(t *testing.T) {
	in := "p-2 m-4 text-sm"
	if got := classmerge.Merge(in); got != in {
		t.Fatalf("Merge(%q) = %q, want unchanged order", in, got)
	}
}

func TestMergeUnrecognizedPassThrough(t *testing.T) {
	if got := classmerge.Merge("totally-unknown-token p-2 p-4"); got != "totally-unknown-token p-4" {
		t.Fatalf("got %q", got)
	}
	// Unknown tokens never collide with each other either.
	in := "custom-a custom-a custom-b"
	if got := classmerge.Merge(in); got != in {
		t.Fatalf("Merge(%q) = %q, want unchanged", in, got)
	}
}

func TestMergeBracketSafety(t *testing.T) {
	cases := map[string]string{
		"aspect-[3/4] aspect-[16/9]": "aspect-[16/9]",
		// Colons and slashes inside the bracket payload are data.
		"bg-[url(https://host/a.png)] bg-[url(https://host/b.png)]": "bg-[url(https://host/b.png)]",
		"bg-[url(https://host/a.png)] bg-red-500":                   "bg-[url(https://host/a.png)] bg-red-500",
	}
	for in, want := range cases {
		if got := classmerge.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeArbitraryProperties(t *testing.T) {
	cases := map[string]string{
		"[mask-type:luminance] [mask-type:alpha]":  "[mask-type:alpha]",
		"[mask-type:alpha] [paint-order:markers]":  "[mask-type:alpha] [paint-order:markers]",
		"hover:[mask-type:alpha] [mask-type:fill]": "hover:[mask-type:alpha] [mask-type:fill]",
	}
	for in, want := range cases {
		if got := classmerge.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergePostfixModifierConflicts(t *testing.T) {
	cases := map[string]string{
		// The postfix form sets line-height too, so it claims leading.
		"leading-9 text-lg/7": "text-lg/7",
		// The plain form leaves line-height alone.
		"leading-9 text-lg":   "leading-9 text-lg",
		"text-lg/7 text-lg":   "text-lg",
		"text-lg/7 text-lg/8": "text-lg/8",
	}
	for in, want := range cases {
		if got := classmerge.Merge(in); got != want {
			t.Fatalf("Merge(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMergeIdempotent(t *testing.T) {
	inputs := []string{
		"px-2 px-4 p-1 hover:p-2 hover:p-4",
		"totally-unknown p-2 [mask-type:alpha] text-lg/7 leading-9",
		"",
		"   ",
	}
	for _, in := range inputs {
		once := classmerge.Merge(in)
		if twice := classmerge.Merge(once); twice != once {
			t.Fatalf("Merge not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestMergeEmptyInput(t *testing.T) {
	if got := classmerge.Merge(); got != "" {
		t.Fatalf("Merge() = %q, want empty", got)
	}
	if got := classmerge.Merge(""); got != "" {
		t.Fatalf("Merge(\"\") = %q, want empty", got)
	}
}

func TestJoinFlattening(t *testing.T) {
	got := classmerge.Join("a", nil, []any{"b", []string{"c", ""}}, false, 3, "d")
	if got != "a b c d" {
		t.Fatalf("Join = %q", got)
	}
	// Join performs no conflict resolution.
	if got := classmerge.Join("p-2", "p-4"); got != "p-2 p-4" {
		t.Fatalf("Join must not merge, got %q", got)
	}
}

func TestMergeFlattensLikeJoin(t *testing.T) {
	got := classmerge.Merge([]any{"p-2", nil, []string{"p-4"}}, "m-1")
	if got != "p-4 m-1" {
		t.Fatalf("got %q", got)
	}
}
