package geo

import (
	"strings"
	"testing"
)

func TestResolveKnownAliases(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, 0)

	for alias, pin := range areaAliases {
		if got := r.Resolve(alias); got != pin {
			t.Errorf("Resolve(%q) = %q, want %q", alias, got, pin)
		}
		upper := strings.ToUpper(alias)
		if got := r.Resolve(upper); got != pin {
			t.Errorf("Resolve(%q) = %q, want %q", upper, got, pin)
		}
	}
}

func TestResolveFuzzyAndFallback(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil, 0)

	tests := []struct {
		name   string
		query  string
		expect string
	}{
		{
			name:   "single typo resolves",
			query:  "indiranager",
			expect: "560038",
		},
		{
			name:   "surrounding whitespace ignored",
			query:  "  Koramangala  ",
			expect: "560034",
		},
		{
			name:   "transposed letters resolve",
			query:  "whitefeild",
			expect: "560066",
		},
		{
			name:   "raw pincode echoed",
			query:  "560038",
			expect: "560038",
		},
		{
			name:   "unknown area echoed",
			query:  "mumbai",
			expect: "mumbai",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Resolve(tt.query); got != tt.expect {
				t.Fatalf("Resolve(%q) = %q, want %q", tt.query, got, tt.expect)
			}
		})
	}
}

type fixedMatcher struct {
	match string
	score float64
}

func (m fixedMatcher) BestMatch(string, []string) (string, float64) {
	return m.match, m.score
}

func TestResolveHonorsThreshold(t *testing.T) {
	t.Parallel()

	below := NewResolver(fixedMatcher{match: "indiranagar", score: 0.59}, 0.6)
	if got := below.Resolve("somewhere"); got != "somewhere" {
		t.Fatalf("expected query echoed below threshold, got %q", got)
	}

	above := NewResolver(fixedMatcher{match: "indiranagar", score: 0.61}, 0.6)
	if got := above.Resolve("somewhere"); got != "560038" {
		t.Fatalf("expected fuzzy match above threshold, got %q", got)
	}
}

func TestLevenshteinMatcherScores(t *testing.T) {
	t.Parallel()

	match, score := LevenshteinMatcher{}.BestMatch("indiranager", aliasNames)
	if match != "indiranagar" {
		t.Fatalf("expected indiranagar, got %q", match)
	}
	if score < 0.6 || score > 1 {
		t.Fatalf("unexpected score %v", score)
	}

	if _, score := (LevenshteinMatcher{}).BestMatch("indiranagar", aliasNames); score != 1 {
		t.Fatalf("expected perfect score for exact candidate, got %v", score)
	}
}
