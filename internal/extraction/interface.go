package extraction

import (
	"context"

	"action-item-extractor/internal/model"
)

// UseCase defines the business logic interface for action item extraction.
type UseCase interface {
	// Extract prompts the configured LLM with the dialogue and recovers action items from its output.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Recover runs the recovery pipeline and schema enforcement on caller-supplied model output.
	Recover(ctx context.Context, sc model.Scope, input RecoverInput) (RecoverOutput, error)

	// Prompt returns the exact prompt that Extract would send for the dialogue.
	Prompt(ctx context.Context, input PromptInput) PromptOutput

	// Examples returns sample transcripts for trying the service.
	Examples(ctx context.Context) []Example
}
