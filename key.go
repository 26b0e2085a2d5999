package refsel

import (
	"math"
	"strconv"
	"strings"
)

// Key is the composite sort key of a reference. Ascending comparison of
// keys yields "most preferred first"; earlier fields dominate later ones.
type Key struct {
	// Slug groups every variant of the same image together.
	Slug string

	// Ordinariness is -1 when the tag starts with "_" (a force-to-head
	// marker) and 1 otherwise, so forced tags outrank every ordinary tag
	// for the same slug.
	Ordinariness int8

	// Registry is the registry host as given; meaningful only when
	// HasRegistry is true. References with an explicit registry rank
	// ahead of references without one.
	Registry    string
	HasRegistry bool

	// VersionRank orders tags by version: -Inf for always-fresh markers
	// (empty, "latest", "_"-prefixed), the negated first numeric substring
	// for versioned tags, and 0 for everything else.
	VersionRank float64

	// Tag and Repository are the literal-text tie-breaks.
	Tag        string
	Repository string
}

// Key derives the sort key of the reference. Pure and total: every valid
// ImageReference yields a well-formed key.
func (r ImageReference) Key() Key {
	ord := int8(1)
	if strings.HasPrefix(r.Tag, "_") {
		ord = -1
	}

	return Key{
		Slug:         r.Slug,
		Ordinariness: ord,
		Registry:     r.Registry,
		HasRegistry:  r.Registry != "",
		VersionRank:  versionRank(r.Tag),
		Tag:          r.Tag,
		Repository:   r.Repository,
	}
}

// Compare returns -1, 0, or +1 comparing keys field by field in priority
// order: slug, ordinariness, registry, version rank, tag, repository.
func (k Key) Compare(o Key) int {
	if c := strings.Compare(k.Slug, o.Slug); c != 0 {
		return c
	}

	if k.Ordinariness != o.Ordinariness {
		if k.Ordinariness < o.Ordinariness {
			return -1
		}
		return 1
	}

	if c := compareRegistry(k, o); c != 0 {
		return c
	}

	if k.VersionRank != o.VersionRank {
		if k.VersionRank < o.VersionRank {
			return -1
		}
		return 1
	}

	if c := strings.Compare(k.Tag, o.Tag); c != 0 {
		return c
	}

	return strings.Compare(k.Repository, o.Repository)
}

// compareRegistry prefers an explicit registry over none; two explicit
// registries compare as plain strings. The explicit present/absent branch
// avoids sentinel-string tricks that break on unusual hostnames.
func compareRegistry(k, o Key) int {
	switch {
	case k.HasRegistry && !o.HasRegistry:
		return -1
	case !k.HasRegistry && o.HasRegistry:
		return 1
	case k.HasRegistry && o.HasRegistry:
		return strings.Compare(k.Registry, o.Registry)
	default:
		return 0
	}
}

// Compare orders two references most-preferred-first ascending. It is
// total and deterministic; equal references compare as 0.
func Compare(a, b ImageReference) int {
	return a.Key().Compare(b.Key())
}

// versionRank maps tag text to the version field of the key.
//
// Empty, "latest", and "_"-prefixed tags are always-fresh markers and rank
// -Inf, sorting before any explicitly versioned tag. A tag carrying a
// number ("1.2", "r9.0-alpha", "42") ranks at the negation of its first
// numeric substring, so higher versions come first under ascending order.
// Suffixes after the number ("-alpha", "-beta") are discarded; such tags
// tie on rank and fall through to the literal tag tie-break. Every other
// tag ranks 0.
func versionRank(tag string) float64 {
	if tag == "" || tag == "latest" || strings.HasPrefix(tag, "_") {
		return math.Inf(-1)
	}

	if n, ok := tagVersion(tag); ok {
		return -n
	}

	return 0
}

// tagVersion extracts the first numeric substring of a tag as a float.
// Reports false for always-fresh markers and tags without digits.
func tagVersion(tag string) (float64, bool) {
	if tag == "" || tag == "latest" || strings.HasPrefix(tag, "_") {
		return 0, false
	}

	m := versionRe.FindString(tag)
	if m == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
