package marketplace

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/gigworks/gig-assistant/internal/geo"
	"github.com/gigworks/gig-assistant/internal/store"
)

// DefaultRadiusKm bounds location-filtered job searches when the caller does
// not supply a radius.
const DefaultRadiusKm = 20.0

// JobSearch finds incoming jobs by trade and optional location.
type JobSearch struct {
	path     string
	resolver *geo.Resolver
	rates    *RateAnalysis
	logger   *zap.Logger
}

// JobMatch pairs an incoming job row with the fields computed during a
// search. Rows are never mutated in place.
type JobMatch struct {
	Job         store.Row
	Distance    float64
	HasDistance bool
}

// Search returns a formatted report of incoming jobs matching the trade,
// optionally filtered to radiusKm around the resolved location and sorted by
// distance. The trade is required; every failure mode is reported as text.
func (s *JobSearch) Search(trade, locationQuery string, radiusKm float64) string {
	if strings.TrimSpace(trade) == "" {
		return "ERROR: Missing trade/category. Please specify the type of work."
	}
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	jobs := loadRows(s.logger, s.path)

	matches := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		if containsFold(job["required_trade"], trade) {
			matches = append(matches, JobMatch{Job: job})
		}
	}

	if query := strings.TrimSpace(locationQuery); query != "" {
		origin := s.resolver.Resolve(query)

		var within []JobMatch
		for _, m := range matches {
			dist := geo.DistanceKm(origin, m.Job["location_zip"])
			if dist <= radiusKm {
				m.Distance = dist
				m.HasDistance = true
				within = append(within, m)
			}
		}
		// Stable: equidistant jobs keep their feed order.
		sort.SliceStable(within, func(i, j int) bool {
			return within[i].Distance < within[j].Distance
		})
		matches = within

		s.logger.Debug("job search filtered by location",
			zap.String("origin", origin),
			zap.Float64("radius_km", radiusKm),
			zap.Int("left", len(matches)),
		)
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No incoming jobs found for %s.", trade)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Incoming Jobs (%d):\n", len(matches))
	for _, m := range matches {
		job := m.Job

		urgency := job["urgency_level"]
		if urgency == "" {
			urgency = "Normal"
		}

		location := job["location_zip"]
		if area := job["area"]; area != "" {
			location += ", " + area
		}

		distInfo := ""
		if m.HasDistance {
			distInfo = fmt.Sprintf(" (%.1f km)", m.Distance)
		}

		fmt.Fprintf(&b, "- ID: %s [%s Urgency] @ %s%s\n", job["job_id"], urgency, location, distInfo)
		fmt.Fprintf(&b, "  Problem: %s\n", job["problem_description"])
		fmt.Fprintf(&b, "  Estimated rate: %s\n", s.rates.Estimate(job["required_trade"], job["problem_description"]))
		fmt.Fprintf(&b, "  Contact: %s\n", job["contact_number"])
	}
	return b.String()
}

// ListAll returns every incoming job as a one-line summary, in feed order.
func (s *JobSearch) ListAll() string {
	jobs := loadRows(s.logger, s.path)
	if len(jobs) == 0 {
		return "No incoming jobs on record."
	}

	var b strings.Builder
	b.WriteString("All Incoming Jobs:\n")
	for _, job := range jobs {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", job["job_id"], job["problem_description"], job["required_trade"])
	}
	return b.String()
}
