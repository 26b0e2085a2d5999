/*
Package refsel (Reference Selector) parses container image reference
strings into a canonical structured form and orders collections of them so
callers can pick the best available image deterministically.

The package is network-agnostic: it operates purely on reference strings.
Typical flow:

 1. Fetch raw references elsewhere (e.g., from a runtime's image listing).
 2. Call Select with desired Options (filters, pick, order, range).
 3. Use the resulting list, or call Best for a single winner.

Parsing notes:
  - Two anchored grammars are tried in order: the long form
    "registry/repository/slug[:tag]" and the short form
    "[repository/]slug[:tag]". The first full match wins.
  - Repository, slug, and tag are lowercase-only; the registry segment of
    the long form is any non-"/" run (hostnames may carry ports and dots).
  - The literal sentinel "<none>" is accepted for slug and tag (dangling
    images).

Ordering notes:
  - References group by slug first, so variants of the same image are
    adjacent after sorting.
  - A tag starting with "_" is a force marker and outranks every ordinary
    tag for the same slug.
  - Empty and "latest" tags are always-fresh markers and sort before any
    explicitly versioned tag; versioned tags sort newest first by their
    first numeric substring; everything else ranks as plain text.
  - An explicit registry is preferred over none.

Usage example:

	raw := []string{
		"reg.example.com/team/app:1.2",
		"reg.example.com/team/app:r9.0",
		"team/app:latest",
		"app:_pinned",
		"other:2.0",
	}

	include, _ := regexp.Compile(`app`)

	res, err := refsel.Select(raw, refsel.Options{
		Include: include,           // keep only matching inputs
		Pick:    refsel.PickFamily, // best reference per image line
		Order:   refsel.OrderBest,  // most preferred first
		Output:  refsel.OutputRaw,  // print inputs as given
	})
	if err != nil {
		// a reference matched neither grammar
	}

	fmt.Println(res)
*/
package refsel
