package classmerge

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Value classifiers: stateless predicates over the payload of a class-name
// segment or an arbitrary value. They are exported so custom configurations
// can reuse them, and each one also has a stable name in the classifier
// registry (see ClassifierByName) so JSON/YAML patches can reference it.

var (
	fractionRE      = regexp.MustCompile(`^\d+/\d+$`)
	tshirtRE        = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthUnitRE    = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	colorFunctionRE = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch))\(.+\)$`)
	shadowRE        = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	imageRE         = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
	arbitraryRE     = regexp.MustCompile(`(?i)^\[(?:([a-z-]+):)?(.+)\]$`)
)

// IsAny accepts every payload. It backs groups whose value space is open,
// such as color scales.
func IsAny(string) bool { return true }

// IsNumber reports whether the payload parses as a decimal number.
func IsNumber(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// IsInteger reports whether the payload parses as a number with no
// fractional part.
func IsInteger(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && f == math.Trunc(f)
}

// IsPercent matches numbers carrying a trailing percent sign.
func IsPercent(v string) bool {
	return strings.HasSuffix(v, "%") && IsNumber(v[:len(v)-1])
}

// IsLength matches bare numbers, the px/full/screen keywords and fraction
// literals such as 1/2.
func IsLength(v string) bool {
	return IsNumber(v) || v == "px" || v == "full" || v == "screen" || fractionRE.MatchString(v)
}

// IsFraction matches fraction literals such as 3/4.
func IsFraction(v string) bool { return fractionRE.MatchString(v) }

// IsTshirtSize matches t-shirt size tokens (sm, xl, 2xl, 1.5xl, ...).
func IsTshirtSize(v string) bool { return tshirtRE.MatchString(v) }

// IsArbitraryValue matches any bracket-wrapped payload, labeled or not.
func IsArbitraryValue(v string) bool { return arbitraryRE.MatchString(v) }

// IsArbitraryLength matches bracketed payloads that are explicitly labeled
// length: or whose content carries a recognizable length unit.
func IsArbitraryLength(v string) bool {
	return isArbitraryWith(v, labelsLength, isLengthOnly)
}

// IsArbitraryNumber matches bracketed payloads labeled number: or holding a
// bare number.
func IsArbitraryNumber(v string) bool {
	return isArbitraryWith(v, labelsNumber, IsNumber)
}

// IsArbitraryPosition matches bracketed payloads explicitly labeled
// position:. Content alone is never enough; positions are not syntactically
// distinguishable from other payloads.
func IsArbitraryPosition(v string) bool {
	return isArbitraryWith(v, labelsPosition, isNever)
}

// IsArbitrarySize matches bracketed payloads labeled size:, length: or
// percentage:.
func IsArbitrarySize(v string) bool {
	return isArbitraryWith(v, labelsSize, isNever)
}

// IsArbitraryImage matches bracketed payloads labeled image:/url: or whose
// content is an image or gradient function call.
func IsArbitraryImage(v string) bool {
	return isArbitraryWith(v, labelsImage, isImage)
}

// IsArbitraryShadow matches unlabeled bracketed payloads shaped like a
// box-shadow (two leading lengths, underscore-separated).
func IsArbitraryShadow(v string) bool {
	return isArbitraryWith(v, nil, isShadow)
}

var (
	labelsLength   = map[string]bool{"length": true}
	labelsNumber   = map[string]bool{"number": true}
	labelsPosition = map[string]bool{"position": true}
	labelsSize     = map[string]bool{"length": true, "size": true, "percentage": true}
	labelsImage    = map[string]bool{"image": true, "url": true}
)

func isArbitraryWith(v string, labels map[string]bool, test func(string) bool) bool {
	m := arbitraryRE.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	if m[1] != "" {
		return labels[strings.ToLower(m[1])]
	}
	return test(m[2])
}

func isNever(string) bool { return false }

func isLengthOnly(v string) bool {
	// Color functions also contain digits followed by letters, so they must
	// be excluded explicitly.
	return lengthUnitRE.MatchString(v) && !colorFunctionRE.MatchString(v)
}

func isImage(v string) bool { return imageRE.MatchString(v) }

func isShadow(v string) bool { return shadowRE.MatchString(v) }

// classifierByName is the registry behind data-driven configuration patches.
// Names are stable; removing or renaming an entry breaks existing config
// files.
var classifierByName = map[string]func(string) bool{
	"any":                IsAny,
	"number":             IsNumber,
	"integer":            IsInteger,
	"percent":            IsPercent,
	"length":             IsLength,
	"fraction":           IsFraction,
	"tshirt-size":        IsTshirtSize,
	"arbitrary-value":    IsArbitraryValue,
	"arbitrary-length":   IsArbitraryLength,
	"arbitrary-number":   IsArbitraryNumber,
	"arbitrary-position": IsArbitraryPosition,
	"arbitrary-size":     IsArbitrarySize,
	"arbitrary-image":    IsArbitraryImage,
	"arbitrary-shadow":   IsArbitraryShadow,
}

// ClassifierByName resolves a registry name to its predicate. It is the
// inverse mapping used by ExtendFromJSON/ExtendFromYAML.
func ClassifierByName(name string) (func(string) bool, bool) {
	fn, ok := classifierByName[name]
	return fn, ok
}
