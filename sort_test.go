package refsel

import (
	"reflect"
	"testing"
)

func parseAllStrings(t *testing.T, in []string) []ImageReference {
	t.Helper()

	refs := make([]ImageReference, 0, len(in))
	for _, s := range in {
		refs = append(refs, MustParse(s))
	}

	return refs
}

func rawOf(refs []ImageReference) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Raw)
	}

	return out
}

func TestSortReferences_WorkedExample(t *testing.T) {
	t.Parallel()

	// For one slug: force marker, then the always-fresh pair (untagged
	// before "latest" by tag text), then numeric tags newest first.
	refs := parseAllStrings(t, []string{
		"bar:1.2", "bar:r9.0", "bar:latest", "bar", "bar:_override",
	})

	SortReferences(refs)

	want := []string{"bar:_override", "bar", "bar:latest", "bar:r9.0", "bar:1.2"}
	if got := rawOf(refs); !reflect.DeepEqual(got, want) {
		t.Fatalf("worked example got %v; want %v", got, want)
	}
}

func TestSortReferences_SlugGrouping(t *testing.T) {
	t.Parallel()

	refs := parseAllStrings(t, []string{
		"zzz:1.0", "app:latest", "zzz:2.0", "reg.com/team/app:9.9", "app:_x",
	})

	SortReferences(refs)

	// every variant of a slug is contiguous after sorting
	got := rawOf(refs)
	want := []string{"app:_x", "reg.com/team/app:9.9", "app:latest", "zzz:2.0", "zzz:1.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("slug grouping got %v; want %v", got, want)
	}
}

func TestSortReferences_NonNumericAfterNumeric(t *testing.T) {
	t.Parallel()

	// rank 0 (no digits) sorts after any negative numeric rank
	refs := parseAllStrings(t, []string{"app:stable", "app:0.1"})

	SortReferences(refs)

	want := []string{"app:0.1", "app:stable"}
	if got := rawOf(refs); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v; want %v", got, want)
	}
}

func TestSortWith_SemverTies(t *testing.T) {
	t.Parallel()

	// "1.2.3", "1.2.9", "1.2.10" all rank as 1.2: the literal tie-break
	// misorders them, SemVer refinement does not.
	in := []string{"app:1.2.3", "app:1.2.10", "app:1.2.9"}

	plain := parseAllStrings(t, in)
	sortWith(plain, false, false)
	wantPlain := []string{"app:1.2.10", "app:1.2.3", "app:1.2.9"}
	if got := rawOf(plain); !reflect.DeepEqual(got, wantPlain) {
		t.Fatalf("literal ties got %v; want %v", got, wantPlain)
	}

	tied := parseAllStrings(t, in)
	sortWith(tied, true, false)
	wantTied := []string{"app:1.2.10", "app:1.2.9", "app:1.2.3"}
	if got := rawOf(tied); !reflect.DeepEqual(got, wantTied) {
		t.Fatalf("semver ties got %v; want %v", got, wantTied)
	}
}

func TestSortWith_SemverTiesFallback(t *testing.T) {
	t.Parallel()

	// Tags that do not parse as SemVer keep the literal tie-break even
	// when the refinement is enabled.
	refs := parseAllStrings(t, []string{"app:r9.0-beta", "app:r9.0-alpha"})
	sortWith(refs, true, false)

	want := []string{"app:r9.0-alpha", "app:r9.0-beta"}
	if got := rawOf(refs); !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback got %v; want %v", got, want)
	}
}

func TestSortWith_Reverse(t *testing.T) {
	t.Parallel()

	refs := parseAllStrings(t, []string{"bar:1.2", "bar:latest", "bar:_override"})
	sortWith(refs, false, true)

	want := []string{"bar:1.2", "bar:latest", "bar:_override"}
	if got := rawOf(refs); !reflect.DeepEqual(got, want) {
		t.Fatalf("reverse got %v; want %v", got, want)
	}
}
