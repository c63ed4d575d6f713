package ai

import "context"

// Assistant answers a single user utterance with conversational text.
type Assistant interface {
	Answer(ctx context.Context, text string) (string, error)
}
