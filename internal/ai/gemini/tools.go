package gemini

import "google.golang.org/genai"

const (
	toolSearchJobs   = "search_jobs"
	toolListAllJobs  = "list_all_jobs"
	toolAnalyzeRates = "analyze_historical_rates"
	toolCheckWorkers = "check_worker_availability"
)

// toolDeclarations describes the marketplace tools to the model.
func toolDeclarations() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        toolSearchJobs,
				Description: "Search incoming gig jobs by trade/category, optionally filtered to a radius around a location. Reports urgency, distance, a historical rate estimate, and contact details.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": {
							Type:        genai.TypeString,
							Description: "Trade or job category, e.g. Plumber or Electrician.",
						},
						"location_query": {
							Type:        genai.TypeString,
							Description: "Area name or pincode to search around. Omit for an 'anywhere' search.",
						},
						"radius_km": {
							Type:        genai.TypeNumber,
							Description: "Search radius in kilometres. Defaults to 20.",
						},
					},
					Required: []string{"category"},
				},
			},
			{
				Name:        toolListAllJobs,
				Description: "List every incoming job on the feed with its trade and problem description.",
			},
			{
				Name:        toolAnalyzeRates,
				Description: "Analyze historical jobs to estimate what a job should cost. Returns average, range, and the most similar past job with its charged rate.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"trade": {
							Type:        genai.TypeString,
							Description: "Trade to look up, e.g. Plumber.",
						},
						"description_keywords": {
							Type:        genai.TypeString,
							Description: "Keywords describing the job, used for similarity matching. May be empty for general trade statistics.",
						},
					},
					Required: []string{"trade"},
				},
			},
			{
				Name:        toolCheckWorkers,
				Description: "Find workers of a trade who are available right now near a location. Reports rating, expertise level, and hourly rate.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"trade": {
							Type:        genai.TypeString,
							Description: "Trade to look up, e.g. Plumber.",
						},
						"pincode": {
							Type:        genai.TypeString,
							Description: "Area name or pincode the customer is in.",
						},
					},
					Required: []string{"trade", "pincode"},
				},
			},
		},
	}}
}
