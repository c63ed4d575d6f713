package marketplace

import (
	"strings"
	"testing"
)

func TestFindAvailableFilters(t *testing.T) {
	t.Parallel()

	s := newServices(t, jobsFixture, historyFixture, workersFixture)

	out := s.Workers.FindAvailable("Plumber", "Malleswaram")
	if !strings.Contains(out, "Available Plumbers near Malleswaram:") {
		t.Fatalf("unexpected report:\n%s", out)
	}

	// Ravi is ~10 km away and available. Sita is available but beyond
	// 15 km, Arun's flag is "False", Kiran's is the lowercase "true", and
	// Maya is an electrician.
	if !strings.Contains(out, "Ravi (ID: W1)") {
		t.Fatalf("expected Ravi in:\n%s", out)
	}
	for _, name := range []string{"Sita", "Arun", "Kiran", "Maya"} {
		if strings.Contains(out, name) {
			t.Fatalf("worker %s should be excluded:\n%s", name, out)
		}
	}

	if !strings.Contains(out, "Level: Elite - Rate: ₹450/hr") {
		t.Fatalf("report missing level and rate:\n%s", out)
	}
}

func TestFindAvailableStrictAvailabilityFlag(t *testing.T) {
	t.Parallel()

	workers := "worker_id,name,trade,service_area_zip,is_available,rating_average,expertise_level,base_hourly_rate,area\n" +
		"W1,A,Plumber,560034,True,4.0,Expert,300,Koramangala\n" +
		"W2,B,Plumber,560034,1,4.0,Expert,300,Koramangala\n" +
		"W3,C,Plumber,560034,,4.0,Expert,300,Koramangala\n" +
		"W4,D,Plumber,560034,TRUE,4.0,Expert,300,Koramangala\n"
	s := newServices(t, jobsFixture, historyFixture, workers)

	out := s.Workers.FindAvailable("Plumber", "Koramangala")
	if !strings.Contains(out, "A (ID: W1)") {
		t.Fatalf("expected exact-literal worker in:\n%s", out)
	}
	for _, id := range []string{"W2", "W3", "W4"} {
		if strings.Contains(out, id) {
			t.Fatalf("non-literal availability flag accepted for %s:\n%s", id, out)
		}
	}
}

func TestFindAvailableKeepsFileOrder(t *testing.T) {
	t.Parallel()

	workers := "worker_id,name,trade,service_area_zip,is_available,rating_average,expertise_level,base_hourly_rate,area\n" +
		"W1,Far,Plumber,560038,True,3.0,Junior,200,Indiranagar\n" +
		"W2,Near,Plumber,560034,True,5.0,Elite,500,Koramangala\n"
	s := newServices(t, jobsFixture, historyFixture, workers)

	out := s.Workers.FindAvailable("Plumber", "Koramangala")
	far := strings.Index(out, "Far")
	near := strings.Index(out, "Near")
	if far == -1 || near == -1 || far > near {
		t.Fatalf("expected file order (no distance sorting):\n%s", out)
	}
}

func TestFindAvailableNoWorkers(t *testing.T) {
	t.Parallel()

	s := newServices(t, jobsFixture, historyFixture, workersFixture)
	if out := s.Workers.FindAvailable("Carpenter", "Koramangala"); !strings.Contains(out, "No accessible workers") {
		t.Fatalf("expected no-workers message, got %q", out)
	}

	missing := newServices(t, jobsFixture, historyFixture, "")
	if out := missing.Workers.FindAvailable("Plumber", "Koramangala"); !strings.Contains(out, "No accessible workers") {
		t.Fatalf("expected no-workers message for missing file, got %q", out)
	}
}

func TestFindAvailableInvalidLocation(t *testing.T) {
	t.Parallel()

	s := newServices(t, jobsFixture, historyFixture, workersFixture)
	if out := s.Workers.FindAvailable("Plumber", "   "); !strings.Contains(out, "Invalid location") {
		t.Fatalf("expected invalid-location message, got %q", out)
	}
}
