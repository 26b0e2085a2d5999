package refsel

import "regexp"

var (
	// Long form: exactly registry/repository/slug[:tag]. The registry
	// segment is any non-"/" run (hostnames may carry ports, dots, or mixed
	// case); repository and slug are restricted to the lowercase classes.
	longFormRe = regexp.MustCompile(`^([^/]+)/([a-z0-9_]{1,30})/(<none>|[a-z0-9_.-]+)(?::(<none>|[a-z0-9_.-]+))?$`)

	// Short form: [repository/]slug[:tag].
	shortFormRe = regexp.MustCompile(`^(?:([a-z0-9_]{1,30})/)?(<none>|[a-z0-9_.-]+)(?::(<none>|[a-z0-9_.-]+))?$`)

	// First number-like substring of a tag. Leftmost-first alternation:
	// "X.Y" wins over bare "X" at the same position, so "r9.0-alpha"
	// extracts "9.0" and "1.2.3" extracts "1.2".
	versionRe = regexp.MustCompile(`\d+\.\d+|\d+`)
)
