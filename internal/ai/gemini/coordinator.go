package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/gigworks/gig-assistant/internal/logger"
)

//go:embed prompt.md
var systemPrompt string

const (
	// maxToolRounds bounds the tool-calling loop so a confused model cannot
	// spin forever.
	maxToolRounds = 8

	defaultMaxLogLength = 200

	fallbackReply = "Sorry, I could not put together an answer for that request. Could you rephrase it?"
)

// Toolset is the deterministic tool surface exposed to the model. Every
// operation returns conversational text the model relays to the user.
type Toolset interface {
	SearchJobs(category, locationQuery string, radiusKm float64) string
	ListAllJobs() string
	AnalyzeHistoricalRates(trade, keywords string) string
	CheckWorkerAvailability(trade, pincode string) string
}

type modelCaller interface {
	Generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	Model() string
}

// Coordinator drives a Gemini tool-calling session over the marketplace
// services: it sends the user utterance together with the tool declarations,
// executes whatever functions the model requests, feeds the results back, and
// returns the model's final text.
type Coordinator struct {
	model     modelCaller
	tools     Toolset
	logger    *zap.Logger
	maxLogLen int
}

func NewCoordinator(model modelCaller, tools Toolset, log *zap.Logger, maxLogLength int) *Coordinator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Coordinator{
		model:     model,
		tools:     tools,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Answer runs the tool-calling loop for one user utterance.
func (c *Coordinator) Answer(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("user text is required")
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Tools:             toolDeclarations(),
	}
	contents := []*genai.Content{genai.NewContentFromText(text, genai.RoleUser)}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := c.model.Generate(ctx, contents, config)
		if err != nil {
			return "", fmt.Errorf("model round %d: %w", round+1, err)
		}

		calls := resp.FunctionCalls()
		if len(calls) == 0 {
			reply := strings.TrimSpace(resp.Text())
			if reply == "" {
				break
			}
			c.logger.Debug("assistant reply",
				zap.Int("rounds", round+1),
				zap.String("preview", logger.TruncateForLog(reply, c.maxLogLen)),
			)
			return reply, nil
		}

		if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
			contents = append(contents, resp.Candidates[0].Content)
		}

		parts := make([]*genai.Part, 0, len(calls))
		for _, call := range calls {
			result := c.dispatch(call)
			c.logger.Debug("tool call",
				zap.String("tool", call.Name),
				zap.Any("args", call.Args),
				zap.String("result_preview", logger.TruncateForLog(result, c.maxLogLen)),
			)
			parts = append(parts, genai.NewPartFromFunctionResponse(call.Name, map[string]any{"result": result}))
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.RoleUser))
	}

	c.logger.Warn("model produced no final text",
		zap.String("model", c.model.Model()),
		zap.String("text_preview", logger.TruncateForLog(text, c.maxLogLen)),
	)
	return fallbackReply, nil
}

type searchJobsArgs struct {
	Category      string  `mapstructure:"category"`
	LocationQuery string  `mapstructure:"location_query"`
	RadiusKm      float64 `mapstructure:"radius_km"`
}

type analyzeRatesArgs struct {
	Trade    string `mapstructure:"trade"`
	Keywords string `mapstructure:"description_keywords"`
}

type checkWorkersArgs struct {
	Trade   string `mapstructure:"trade"`
	Pincode string `mapstructure:"pincode"`
}

// dispatch executes a single model-requested function call. Argument decoding
// failures become tool output: the model can usually repair its own call once
// it reads the complaint.
func (c *Coordinator) dispatch(call *genai.FunctionCall) string {
	switch call.Name {
	case toolSearchJobs:
		var args searchJobsArgs
		if err := decodeArgs(call.Args, &args); err != nil {
			return badArgs(call.Name, err)
		}
		return c.tools.SearchJobs(args.Category, args.LocationQuery, args.RadiusKm)

	case toolListAllJobs:
		return c.tools.ListAllJobs()

	case toolAnalyzeRates:
		var args analyzeRatesArgs
		if err := decodeArgs(call.Args, &args); err != nil {
			return badArgs(call.Name, err)
		}
		return c.tools.AnalyzeHistoricalRates(args.Trade, args.Keywords)

	case toolCheckWorkers:
		var args checkWorkersArgs
		if err := decodeArgs(call.Args, &args); err != nil {
			return badArgs(call.Name, err)
		}
		return c.tools.CheckWorkerAvailability(args.Trade, args.Pincode)

	default:
		return fmt.Sprintf("Unknown tool %q.", call.Name)
	}
}

func decodeArgs(in map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}

func badArgs(tool string, err error) string {
	return fmt.Sprintf("Tool %s could not read its arguments: %v.", tool, err)
}
