package marketplace

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/gigworks/gig-assistant/internal/store"
)

// topMatches caps how many historical records feed the summary statistics.
const topMatches = 5

// RateAnalysis estimates fair prices from historical job records.
type RateAnalysis struct {
	path   string
	logger *zap.Logger
}

// HistoryMatch pairs a historical record with its keyword match score and
// parsed charged rate.
type HistoryMatch struct {
	Record store.Row
	Score  int
	Rate   float64
}

// Analyze summarizes what similar jobs actually cost. Records are filtered by
// trade (case-insensitive substring) and scored by how many keyword tokens
// appear in their description. When keywords match nothing, the summary falls
// back to trade-wide statistics; only a trade with no history at all yields
// the explicit no-data message.
func (s *RateAnalysis) Analyze(trade, keywords string) string {
	tokens := strings.Fields(strings.ToLower(keywords))

	all := s.tradeMatches(trade, tokens)
	qualified := scored(all)
	if len(qualified) == 0 {
		qualified = all
	}
	if len(qualified) == 0 {
		return fmt.Sprintf("No historical data found for %s matching %q.", trade, keywords)
	}

	// Stable: equal scores keep their original order.
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Score > qualified[j].Score
	})

	top := qualified
	if len(top) > topMatches {
		top = top[:topMatches]
	}

	minRate, maxRate, avgRate := rateStats(top)
	best := top[0]

	cite := best.Record["job_description"]
	if area := best.Record["area"]; area != "" {
		cite += " in " + area
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Historical Analysis for '%s' (%d matches):\n", trade, len(qualified))
	fmt.Fprintf(&b, "- Avg Final Cost: ₹%.2f\n", avgRate)
	fmt.Fprintf(&b, "- Range: ₹%.0f - ₹%.0f\n", minRate, maxRate)
	fmt.Fprintf(&b, "- Similar Job: %s (Charged: ₹%.0f)\n", cite, best.Rate)
	return b.String()
}

// Estimate is the compact variant used to decorate job search results. It
// prefers keyword-matching records but falls back to all trade-matching ones,
// so it produces a figure whenever the trade has any history at all.
func (s *RateAnalysis) Estimate(trade, description string) string {
	tokens := strings.Fields(strings.ToLower(description))

	all := s.tradeMatches(trade, tokens)
	if len(all) == 0 {
		return "N/A"
	}

	pool := scored(all)
	if len(pool) == 0 {
		pool = all
	}

	minRate, maxRate, avgRate := rateStats(pool)
	return fmt.Sprintf("₹%.0f - ₹%.0f (avg ₹%.0f)", minRate, maxRate, avgRate)
}

// tradeMatches returns every historical record matching the trade, scored
// against the keyword tokens. Records without a parseable rate are dropped.
func (s *RateAnalysis) tradeMatches(trade string, tokens []string) []HistoryMatch {
	history := loadRows(s.logger, s.path)

	var matched []HistoryMatch
	for _, record := range history {
		if !containsFold(record["trade"], trade) {
			continue
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(record["final_rate_charged"]), 64)
		if err != nil {
			s.logger.Debug("skipping historical record with unparseable rate",
				zap.String("trade", record["trade"]),
				zap.String("final_rate_charged", record["final_rate_charged"]),
			)
			continue
		}

		description := strings.ToLower(record["job_description"])
		score := 0
		for _, token := range tokens {
			if strings.Contains(description, token) {
				score++
			}
		}

		matched = append(matched, HistoryMatch{Record: record, Score: score, Rate: rate})
	}
	return matched
}

func scored(matches []HistoryMatch) []HistoryMatch {
	var out []HistoryMatch
	for _, m := range matches {
		if m.Score > 0 {
			out = append(out, m)
		}
	}
	return out
}

func rateStats(matches []HistoryMatch) (minRate, maxRate, avgRate float64) {
	minRate = matches[0].Rate
	maxRate = matches[0].Rate

	sum := 0.0
	for _, m := range matches {
		if m.Rate < minRate {
			minRate = m.Rate
		}
		if m.Rate > maxRate {
			maxRate = m.Rate
		}
		sum += m.Rate
	}
	return minRate, maxRate, sum / float64(len(matches))
}
