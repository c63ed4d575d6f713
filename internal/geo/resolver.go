package geo

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultMinSimilarity is the fuzzy-match acceptance threshold. Chosen
// empirically: lower values start mapping unrelated queries onto the wrong
// area, higher values stop forgiving common typos.
const DefaultMinSimilarity = 0.6

// Matcher finds the closest candidate to a query string, returning the best
// candidate and a similarity score in [0, 1].
type Matcher interface {
	BestMatch(query string, candidates []string) (string, float64)
}

// LevenshteinMatcher scores candidates by normalized edit distance.
type LevenshteinMatcher struct{}

func (LevenshteinMatcher) BestMatch(query string, candidates []string) (string, float64) {
	best := ""
	bestScore := 0.0

	for _, candidate := range candidates {
		longest := len([]rune(query))
		if l := len([]rune(candidate)); l > longest {
			longest = l
		}
		if longest == 0 {
			continue
		}

		distance := levenshtein.ComputeDistance(query, candidate)
		score := 1 - float64(distance)/float64(longest)
		if score > bestScore {
			best = candidate
			bestScore = score
		}
	}

	return best, bestScore
}

// Resolver maps free-text location queries (area names or raw pincodes) to
// canonical pincodes. Resolution never fails: queries that match nothing are
// echoed back and treated downstream as literal pincodes.
type Resolver struct {
	matcher       Matcher
	minSimilarity float64
}

// NewResolver creates a Resolver. A nil matcher selects the Levenshtein
// matcher; a non-positive threshold selects DefaultMinSimilarity.
func NewResolver(matcher Matcher, minSimilarity float64) *Resolver {
	if matcher == nil {
		matcher = LevenshteinMatcher{}
	}
	if minSimilarity <= 0 {
		minSimilarity = DefaultMinSimilarity
	}
	return &Resolver{matcher: matcher, minSimilarity: minSimilarity}
}

// Resolve returns the canonical pincode for a query. Exact alias hits win,
// then the closest fuzzy alias match above the similarity threshold, then the
// original query unchanged.
func (r *Resolver) Resolve(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))

	if pin, ok := areaAliases[q]; ok {
		return pin
	}

	if match, score := r.matcher.BestMatch(q, aliasNames); score >= r.minSimilarity {
		return areaAliases[match]
	}

	return query
}
