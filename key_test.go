package refsel

import (
	"math"
	"testing"
)

func TestVersionRank(t *testing.T) {
	t.Parallel()

	negInf := math.Inf(-1)

	cases := []struct {
		tag  string
		want float64
	}{
		// always-fresh markers
		{"", negInf},
		{"latest", negInf},
		{"_override", negInf},
		// first numeric substring, negated
		{"1.2", -1.2},
		{"r10.1", -10.1},
		{"r9.0-alpha", -9.0},
		{"r9.0-beta", -9.0},
		{"1.2.3", -1.2}, // first number is "1.2", not the full triple
		{"v2", -2},
		{"42", -42},
		// no digits at all
		{"stable", 0},
		{"beta-x", 0},
		{"<none>", 0},
	}

	for _, c := range cases {
		if got := versionRank(c.tag); got != c.want {
			t.Fatalf("versionRank(%q) got %v; want %v", c.tag, got, c.want)
		}
	}
}

func TestKey_Fields(t *testing.T) {
	t.Parallel()

	k := MustParse("reg.example.com/team/app:_hot").Key()
	want := Key{
		Slug:         "app",
		Ordinariness: -1,
		Registry:     "reg.example.com",
		HasRegistry:  true,
		VersionRank:  math.Inf(-1),
		Tag:          "_hot",
		Repository:   "team",
	}
	if k != want {
		t.Fatalf("Key got %+v; want %+v", k, want)
	}

	k = MustParse("app:r9.0").Key()
	want = Key{Slug: "app", Ordinariness: 1, VersionRank: -9.0, Tag: "r9.0"}
	if k != want {
		t.Fatalf("Key got %+v; want %+v", k, want)
	}
}

func TestCompare_ForceMarkerPrecedence(t *testing.T) {
	t.Parallel()

	forced := MustParse("team/app:_pinned")
	for _, other := range []string{"team/app", "team/app:latest", "team/app:9.9", "team/app:stable"} {
		if Compare(forced, MustParse(other)) >= 0 {
			t.Fatalf("forced tag does not outrank %q", other)
		}
	}
}

func TestCompare_RegistryPreference(t *testing.T) {
	t.Parallel()

	named := MustParse("a.com/team/app:1.0")
	bare := MustParse("team/app:1.0")
	if Compare(named, bare) >= 0 {
		t.Fatal("explicit registry should sort before absent registry")
	}

	// two explicit registries compare as plain strings
	other := MustParse("b.com/team/app:1.0")
	if Compare(named, other) >= 0 {
		t.Fatal(`"a.com" should sort before "b.com"`)
	}
}

func TestCompare_SlugDominates(t *testing.T) {
	t.Parallel()

	// slug is the first field: a bare "aaa" beats a fully qualified "zzz"
	a := MustParse("aaa")
	z := MustParse("reg.example.com/team/zzz:_forced")
	if Compare(a, z) >= 0 {
		t.Fatal("slug must dominate every later field")
	}
}

func TestCompare_RepositoryTieBreak(t *testing.T) {
	t.Parallel()

	a := MustParse("alpha/app:1.0")
	b := MustParse("beta/app:1.0")
	if Compare(a, b) >= 0 {
		t.Fatal("repository is the last-resort tie-break")
	}

	// absent repository compares as empty string, ahead of any named one
	bare := MustParse("app:1.0")
	if Compare(bare, a) >= 0 {
		t.Fatal("absent repository should compare as empty string")
	}
}

func TestCompare_Deterministic(t *testing.T) {
	t.Parallel()

	a := MustParse("team/app:1.2")
	b := MustParse("team/app:1.2")
	if Compare(a, b) != 0 {
		t.Fatal("identical references must compare equal")
	}
	if Compare(a, a) != 0 {
		t.Fatal("a reference must compare equal to itself")
	}
}
