package refsel

// ImageReference is the canonical structured form of a container image
// reference string. Values are immutable: fields are set once by Parse and
// every derived value (Family, Key) is a pure function of them.
type ImageReference struct {
	// Raw is the exact input string, kept for diagnostics and display.
	Raw string

	// Registry is the host[:port] of a registry. Empty when the reference
	// has at most two "/"-separated segments before the slug. A non-empty
	// Registry always comes with a non-empty Repository.
	Registry string

	// Repository is the path segment between registry and slug
	// ([a-z0-9_], 1-30 characters). Empty when absent.
	Repository string

	// Slug is the image's base name; never empty. May be the literal
	// sentinel "<none>" for dangling images.
	Slug string

	// Tag is the tag text; empty means untagged. May be "<none>".
	Tag string
}

// Parse turns a raw reference string into an ImageReference. Two anchored
// grammars are tried in order and the first full match wins:
//
//	long:  registry/repository/slug[:tag]
//	short: [repository/]slug[:tag]
//
// A string matching neither grammar fails with a MalformedReferenceError.
func Parse(s string) (ImageReference, error) {
	if m := longFormRe.FindStringSubmatch(s); m != nil {
		return ImageReference{Raw: s, Registry: m[1], Repository: m[2], Slug: m[3], Tag: m[4]}, nil
	}
	if m := shortFormRe.FindStringSubmatch(s); m != nil {
		return ImageReference{Raw: s, Repository: m[1], Slug: m[2], Tag: m[3]}, nil
	}
	return ImageReference{}, &MalformedReferenceError{Reference: s}
}

// MustParse is like Parse but panics on malformed input. Intended for
// fixed references in tests and examples.
func MustParse(s string) ImageReference {
	ref, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// Family returns the reference without its tag: "registry/repository/slug"
// for the long form, "repository/slug" or a bare "slug" for the short form.
// Tag variants of the same image line share a family.
func (r ImageReference) Family() string {
	switch {
	case r.Registry != "":
		return r.Registry + "/" + r.Repository + "/" + r.Slug
	case r.Repository != "":
		return r.Repository + "/" + r.Slug
	default:
		return r.Slug
	}
}

// String returns the raw input the reference was parsed from.
func (r ImageReference) String() string {
	return r.Raw
}
