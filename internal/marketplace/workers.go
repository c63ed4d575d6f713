package marketplace

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/gigworks/gig-assistant/internal/geo"
	"github.com/gigworks/gig-assistant/internal/store"
)

// maxWorkerDistanceKm is the strict upper bound on how far a worker's service
// area may be from the requested location.
const maxWorkerDistanceKm = 15.0

// availableLiteral is the exact flag value marking a worker as available.
// Anything else ("false", "0", empty) counts as unavailable.
const availableLiteral = "True"

// WorkerAvailability finds workers who can take a job right now.
type WorkerAvailability struct {
	path     string
	resolver *geo.Resolver
	logger   *zap.Logger
}

// WorkerMatch pairs a worker profile row with its computed distance.
type WorkerMatch struct {
	Worker   store.Row
	Distance float64
}

// FindAvailable returns a formatted report of available workers for a trade
// near the given location. Results keep the profile file order.
func (s *WorkerAvailability) FindAvailable(trade, pincode string) string {
	resolved := strings.TrimSpace(s.resolver.Resolve(pincode))
	if resolved == "" {
		return "Invalid location. Please provide an area name or pincode."
	}

	workers := loadRows(s.logger, s.path)

	var available []WorkerMatch
	for _, worker := range workers {
		if !containsFold(worker["trade"], trade) {
			continue
		}
		if worker["is_available"] != availableLiteral {
			continue
		}
		dist := geo.DistanceKm(resolved, worker["service_area_zip"])
		if dist >= maxWorkerDistanceKm {
			continue
		}
		available = append(available, WorkerMatch{Worker: worker, Distance: dist})
	}

	s.logger.Debug("worker availability lookup",
		zap.String("trade", trade),
		zap.String("resolved_pincode", resolved),
		zap.Int("available", len(available)),
	)

	if len(available) == 0 {
		return "No accessible workers available right now."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Available %ss near %s:\n", trade, pincode)
	for _, m := range available {
		worker := m.Worker
		fmt.Fprintf(&b, "- %s (ID: %s) - Rating: %s - %.1f km away\n",
			worker["name"], worker["worker_id"], worker["rating_average"], m.Distance)
		fmt.Fprintf(&b, "  Level: %s - Rate: ₹%s/hr\n",
			worker["expertise_level"], worker["base_hourly_rate"])
	}
	return b.String()
}
