package refsel

// Select filters, parses, sorts, and aggregates raw reference strings.
// Simple, readable pipeline:
//  1. cheap raw prefilter (Include/Exclude)
//  2. parse all (once); malformed input fails the call unless SkipMalformed
//  3. range clipping on extracted numeric versions
//  4. sort (Order), optionally refining ties by SemVer
//  5. aggregation (Pick)
//  6. projection (Output) and Limit
func Select(in []string, opt Options) ([]string, error) {
	refs, err := parseAll(in, opt)
	if err != nil {
		return nil, err
	}

	if opt.Range.Enabled() {
		refs = applyRange(refs, opt.Range)
	}

	switch opt.Order {
	case OrderBest:
		sortWith(refs, opt.SemverTies, false)
	case OrderWorst:
		sortWith(refs, opt.SemverTies, true)
	case OrderNone:
		// keep original order
	}

	refs = aggregate(refs, opt)

	return capStrings(project(refs, opt.Output), opt.Limit), nil
}

// parseAll prefilters and parses the raw inputs once.
func parseAll(in []string, opt Options) ([]ImageReference, error) {
	refs := make([]ImageReference, 0, len(in))
	for _, s := range in {
		if !prefilter(s, opt) {
			continue
		}

		ref, err := Parse(s)
		if err != nil {
			if opt.SkipMalformed {
				continue
			}
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, nil
}

// prefilter: cheap raw checks before parsing (user regexes).
func prefilter(s string, opt Options) bool {
	if opt.Include != nil && !opt.Include.MatchString(s) {
		return false
	}

	if opt.Exclude != nil && opt.Exclude.MatchString(s) {
		return false
	}

	return true
}

// aggregate reduces refs according to opt.Pick.
func aggregate(in []ImageReference, opt Options) []ImageReference {
	switch opt.Pick {
	case PickFamily:
		return bestPer(in, ImageReference.Family, opt)

	case PickSlug:
		return bestPer(in, func(r ImageReference) string { return r.Slug }, opt)

	case PickBest:
		if len(in) == 0 {
			return in
		}

		best := in[0]
		for _, r := range in[1:] {
			if compareWith(r, best, opt.SemverTies) < 0 {
				best = r
			}
		}

		return []ImageReference{best}

	default: // PickAll
		return in
	}
}

// bestPer keeps the most preferred reference per group, preserving the
// order of first appearance of each group.
func bestPer(in []ImageReference, groupOf func(ImageReference) string, opt Options) []ImageReference {
	by := make(map[string]ImageReference, len(in))
	order := make([]string, 0, 64)

	for _, r := range in {
		g := groupOf(r)
		b, ok := by[g]
		if !ok {
			by[g] = r
			order = append(order, g)
			continue
		}

		if compareWith(r, b, opt.SemverTies) < 0 {
			by[g] = r
		}
	}

	out := make([]ImageReference, 0, len(by))
	for _, g := range order {
		out = append(out, by[g])
	}

	return out
}

// project renders each reference per the requested Output.
func project(refs []ImageReference, out Output) []string {
	res := make([]string, 0, len(refs))
	for _, r := range refs {
		switch out {
		case OutputFamily:
			res = append(res, r.Family())
		case OutputSlug:
			res = append(res, r.Slug)
		default:
			res = append(res, r.Raw)
		}
	}

	return res
}
