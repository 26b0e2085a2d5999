package refsel

import (
	"sort"
	"strings"

	"github.com/woozymasta/semver"
)

// SortReferences stable-sorts refs in place, most preferred first.
func SortReferences(refs []ImageReference) {
	sort.SliceStable(refs, func(i, j int) bool {
		return Compare(refs[i], refs[j]) < 0
	})
}

// sortWith stable-sorts refs with the optional SemVer tie refinement and
// direction applied. Equal references keep their input order.
func sortWith(refs []ImageReference, semverTies, reverse bool) {
	sort.SliceStable(refs, func(i, j int) bool {
		c := compareWith(refs[i], refs[j], semverTies)
		if reverse {
			return c > 0
		}
		return c < 0
	})
}

// compareWith applies the composite key order. With semverTies set, a tie
// that survives through the version-rank field is broken by SemVer
// precedence of the tags (newest first) before falling back to literal tag
// text, so "1.2.10" beats "1.2.9" even though both rank as 1.2.
func compareWith(a, b ImageReference, semverTies bool) int {
	ka, kb := a.Key(), b.Key()
	if !semverTies {
		return ka.Compare(kb)
	}

	// Compare the dominant fields only, then take over the tie-breaks.
	ha, hb := ka, kb
	ha.Tag, ha.Repository = "", ""
	hb.Tag, hb.Repository = "", ""
	if c := ha.Compare(hb); c != 0 {
		return c
	}

	if c := compareSemverTags(ka.Tag, kb.Tag); c != 0 {
		return c
	}
	if c := strings.Compare(ka.Tag, kb.Tag); c != 0 {
		return c
	}

	return strings.Compare(ka.Repository, kb.Repository)
}

// compareSemverTags compares two tags by SemVer precedence, newest first.
// Returns 0 when either side is not a valid SemVer.
func compareSemverTags(a, b string) int {
	va, ok := semver.Parse(a)
	if !ok || !va.IsValid() {
		return 0
	}

	vb, ok := semver.Parse(b)
	if !ok || !vb.IsValid() {
		return 0
	}

	return vb.Compare(va)
}
