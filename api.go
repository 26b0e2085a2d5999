package refsel

// DefaultOptions returns a practical preset for cluster callers:
//
//   - Pick:   PickFamily  // best reference per image line
//   - Order:  OrderBest   // most preferred first
//   - Output: OutputRaw   // print inputs as given
//
// Note: SkipMalformed is left false on purpose. Set it to true in your own
// Options if unparsable input should be dropped instead of surfaced.
func DefaultOptions() Options {
	return Options{
		Pick:   PickFamily,
		Order:  OrderBest,
		Output: OutputRaw,
	}
}

// BestPerFamily runs Select with DefaultOptions.
//
// It keeps the most preferred reference for every image line (reference
// minus tag), ordered most preferred first. Equivalent to
// Select(in, DefaultOptions()).
func BestPerFamily(in []string) ([]string, error) {
	return Select(in, DefaultOptions())
}

// Best returns the single most preferred reference from in, after applying
// the filters and range of opt. The empty string means nothing survived
// filtering. Pick, Order, and Limit of opt are overridden.
func Best(in []string, opt Options) (string, error) {
	opt.Pick = PickBest
	opt.Order = OrderBest
	opt.Limit = 1

	out, err := Select(in, opt)
	if err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", nil
	}

	return out[0], nil
}
