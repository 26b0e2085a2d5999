package refsel

import "strconv"

// Range clips references to [Min, Max] on the numeric version extracted
// from the tag (the same number the version rank negates). Bounds are
// decimal strings like "2" or "1.10"; empty means unbounded. Malformed
// bounds are ignored.
type Range struct {
	Min string // empty => no lower bound
	Max string // empty => no upper bound

	// When true => exclusive bound. Default false => inclusive.
	MinExclusive bool
	MaxExclusive bool

	// KeepUnversioned keeps references whose tag yields no numeric version
	// (untagged, "latest", "_"-prefixed, or digit-free tags). By default a
	// set bound drops them.
	KeepUnversioned bool
}

// Enabled reports whether any bound is set.
func (r Range) Enabled() bool {
	return r.Min != "" || r.Max != ""
}

// applyRange filters refs in place by the extracted tag version.
func applyRange(in []ImageReference, r Range) []ImageReference {
	if len(in) == 0 {
		return in
	}

	minV, hasMin := parseBound(r.Min)
	maxV, hasMax := parseBound(r.Max)
	if !hasMin && !hasMax {
		return in
	}

	out := in[:0]
	for _, ref := range in {
		v, ok := tagVersion(ref.Tag)
		if !ok {
			if r.KeepUnversioned {
				out = append(out, ref)
			}
			continue
		}

		if hasMin {
			if v < minV || (v == minV && r.MinExclusive) {
				continue
			}
		}

		if hasMax {
			if v > maxV || (v == maxV && r.MaxExclusive) {
				continue
			}
		}

		out = append(out, ref)
	}

	return out
}

func parseBound(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
