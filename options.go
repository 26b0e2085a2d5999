package refsel

import "regexp"

// Options configures filtering, selection, and output behavior. The zero
// value keeps everything: no prefilters, PickAll, OrderBest, OutputRaw,
// no range, no limit.
type Options struct {
	// Include keeps only raw inputs matching the regexp (applied before
	// parsing).
	Include *regexp.Regexp

	// Exclude drops raw inputs matching the regexp (applied before
	// parsing).
	Exclude *regexp.Regexp

	// SkipMalformed drops inputs matching neither grammar instead of
	// failing the whole call. Off by default: a malformed reference
	// cannot be assigned any meaningful position, so the library
	// surfaces it.
	SkipMalformed bool

	// SemverTies refines the literal tag tie-break with SemVer precedence
	// (newest first) when both tags parse as SemVer. Off by default; the
	// composite key order is untouched up to and including version rank.
	SemverTies bool

	// Pick controls aggregation (all/family/slug/best).
	Pick Pick

	// Order defines output ordering (best/worst/none).
	Order Order

	// Output selects the projection of each reference (raw/family/slug).
	Output Output

	// Range clips references by the numeric version extracted from the
	// tag. Applied after parsing and before aggregation.
	Range Range

	// Limit caps the number of output entries (<=0 = unlimited).
	Limit int
}

// Pick controls how many references survive aggregation.
type Pick int

const (
	// PickAll keeps every reference.
	PickAll Pick = iota
	// PickFamily keeps the most preferred reference per family
	// (reference minus tag).
	PickFamily
	// PickSlug keeps the most preferred reference per slug.
	PickSlug
	// PickBest keeps a single most preferred reference overall.
	PickBest
)

// String returns a stable textual representation for Pick.
func (p Pick) String() string {
	switch p {
	case PickFamily:
		return "family"
	case PickSlug:
		return "slug"
	case PickBest:
		return "best"
	default:
		return "all"
	}
}

// ParsePick maps free-form tokens to Pick.
// Supported aliases (case-insensitive):
//
//	all:    "all","any","*","0"
//	family: "family","fam","line","1"
//	slug:   "slug","image","name","2"
//	best:   "best","first","top","3"
func ParsePick(s string) Pick {
	switch toTok(s) {
	// keep everything
	case "all", "any", "*", "0":
		return PickAll

	// best per image line
	case "family", "fam", "line", "1":
		return PickFamily

	// best per base name
	case "slug", "image", "name", "2":
		return PickSlug

	// single overall winner
	case "best", "first", "top", "3":
		return PickBest

	default:
		return PickAll
	}
}

// Order controls the final output ordering.
type Order uint8

const (
	// OrderBest sorts most preferred first.
	OrderBest Order = iota
	// OrderWorst reverses OrderBest.
	OrderWorst
	// OrderNone preserves the input order (filtering only).
	OrderNone
)

// String returns a stable textual representation for Order.
func (o Order) String() string {
	switch o {
	case OrderWorst:
		return "worst"
	case OrderNone:
		return "none"
	default:
		return "best"
	}
}

// ParseOrder maps strings to Order.
// Supported aliases:
//
//	best:  "best","preferred","asc","first"
//	worst: "worst","reverse","desc","last"
//	none:  "none","default","asis"
func ParseOrder(s string) Order {
	switch toTok(s) {
	// most preferred first
	case "best", "preferred", "asc", "first":
		return OrderBest

	// least preferred first
	case "worst", "reverse", "desc", "last":
		return OrderWorst

	// as is
	case "none", "default", "asis":
		return OrderNone

	default:
		return OrderBest
	}
}

// Output selects how a reference is projected into the result list.
type Output uint8

const (
	// OutputRaw prints the reference exactly as given.
	OutputRaw Output = iota
	// OutputFamily prints the reference minus its tag.
	OutputFamily
	// OutputSlug prints the base image name only.
	OutputSlug
)

// String returns a stable textual representation for Output.
func (o Output) String() string {
	switch o {
	case OutputFamily:
		return "family"
	case OutputSlug:
		return "slug"
	default:
		return "raw"
	}
}

// ParseOutput maps free-form strings to Output.
// Supported aliases (case-insensitive):
//
//	raw:    "", "raw","ref","reference"
//	family: "family","fam","line"
//	slug:   "slug","name","image"
func ParseOutput(s string) Output {
	switch toTok(s) {
	case "", "raw", "ref", "reference":
		return OutputRaw
	case "family", "fam", "line":
		return OutputFamily
	case "slug", "name", "image":
		return OutputSlug
	default:
		return OutputRaw
	}
}
