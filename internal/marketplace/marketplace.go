// Package marketplace implements the deterministic tool layer of the
// assistant: incoming-job search, historical rate analysis, and worker
// availability. Every operation returns a formatted text block, because the
// consumer is a language model that relays the text to an end user. For the
// same reason all failure modes (missing inputs, unknown locations, absent
// data files, empty result sets) are absorbed into conversational content and
// never surface as errors.
package marketplace

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gigworks/gig-assistant/internal/geo"
	"github.com/gigworks/gig-assistant/internal/store"
)

// Paths locates the marketplace data files.
type Paths struct {
	Jobs    string
	History string
	Workers string
}

// Services bundles the three marketplace services over a shared resolver and
// data location. It is safe for concurrent use: all shared state is read-only
// and tables are re-read per call.
type Services struct {
	Jobs    *JobSearch
	Rates   *RateAnalysis
	Workers *WorkerAvailability
}

func New(paths Paths, resolver *geo.Resolver, logger *zap.Logger) *Services {
	if resolver == nil {
		resolver = geo.NewResolver(nil, 0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	rates := &RateAnalysis{path: paths.History, logger: logger}

	return &Services{
		Jobs:    &JobSearch{path: paths.Jobs, resolver: resolver, rates: rates, logger: logger},
		Rates:   rates,
		Workers: &WorkerAvailability{path: paths.Workers, resolver: resolver, logger: logger},
	}
}

// SearchJobs exposes job search to the tool-calling layer.
func (s *Services) SearchJobs(category, locationQuery string, radiusKm float64) string {
	return s.Jobs.Search(category, locationQuery, radiusKm)
}

// ListAllJobs exposes the full job feed to the tool-calling layer.
func (s *Services) ListAllJobs() string {
	return s.Jobs.ListAll()
}

// AnalyzeHistoricalRates exposes rate analysis to the tool-calling layer.
func (s *Services) AnalyzeHistoricalRates(trade, keywords string) string {
	return s.Rates.Analyze(trade, keywords)
}

// CheckWorkerAvailability exposes worker lookup to the tool-calling layer.
func (s *Services) CheckWorkerAvailability(trade, pincode string) string {
	return s.Workers.FindAvailable(trade, pincode)
}

// loadRows reads a table, absorbing read failures into an empty dataset so
// callers produce a regular "no results" reply instead of propagating IO
// errors into the conversation.
func loadRows(logger *zap.Logger, path string) []store.Row {
	rows, err := store.Load(path)
	if err != nil {
		logger.Warn("reading data table failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	return rows
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
