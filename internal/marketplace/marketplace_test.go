package marketplace

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/gigworks/gig-assistant/internal/geo"
)

const jobsFixture = "job_id,required_trade,problem_description,location_zip,urgency_level,area,contact_number\n" +
	"J1,Plumber,Leaking kitchen tap,560034,High,Koramangala,9800000001\n" +
	"J2,Electrician,Fan installation,560038,Normal,Indiranagar,9800000002\n" +
	"J3,Plumber,Bathroom pipe burst,560038,Critical,Indiranagar,9800000003\n" +
	"J4,Plumber,Water heater leak,560066,Low,Whitefield,9800000004\n" +
	"J5,Plumber,Clogged drain,400001,Normal,Mumbai,9800000005\n"

const historyFixture = "trade,job_description,final_rate_charged,area\n" +
	"Plumber,Fixed leaking tap,450,Koramangala\n" +
	"Plumber,Pipe replacement under sink,800,Indiranagar\n" +
	"Plumber,Drain cleaning,350,BTM Layout\n" +
	"Electrician,Fan installation,400,Jayanagar\n" +
	"Plumber,Leaking geyser repair,600,HSR Layout\n" +
	"Plumber,Tap washer change,250,Jayanagar\n"

const workersFixture = "worker_id,name,trade,service_area_zip,is_available,rating_average,expertise_level,base_hourly_rate,area\n" +
	"W1,Ravi,Plumber,560034,True,4.8,Elite,450,Koramangala\n" +
	"W2,Sita,Plumber,560100,True,4.5,Expert,400,Electronic City\n" +
	"W3,Arun,Plumber,560038,False,4.9,Elite,500,Indiranagar\n" +
	"W4,Maya,Electrician,560034,True,4.2,Intermediate,350,Koramangala\n" +
	"W5,Kiran,Plumber,560102,true,4.0,Expert,300,HSR Layout\n"

// newServices builds a service bundle over temp CSV fixtures. An empty
// fixture string leaves that file absent.
func newServices(t *testing.T, jobs, history, workers string) *Services {
	t.Helper()
	dir := t.TempDir()

	paths := Paths{
		Jobs:    filepath.Join(dir, "gig_jobs.csv"),
		History: filepath.Join(dir, "historical_jobs.csv"),
		Workers: filepath.Join(dir, "worker_profiles.csv"),
	}

	write := func(path, content string) {
		if content == "" {
			return
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}
	}
	write(paths.Jobs, jobs)
	write(paths.History, history)
	write(paths.Workers, workers)

	return New(paths, geo.NewResolver(nil, 0), zap.NewNop())
}
