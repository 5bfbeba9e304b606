package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"action-item-extractor/internal/extraction"
	"action-item-extractor/internal/model"
	"action-item-extractor/pkg/actionitem"
	"action-item-extractor/pkg/llmprovider"
)

// Extract builds the few-shot prompt, calls the provider chain and recovers
// action items from whatever text comes back.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input extraction.ExtractInput) (extraction.ExtractOutput, error) {
	dialogue := strings.TrimSpace(input.Dialogue)
	if dialogue == "" {
		return extraction.ExtractOutput{}, extraction.ErrEmptyDialogue
	}
	if uc.cfg.MaxDialogueChars > 0 && utf8.RuneCountInString(dialogue) > uc.cfg.MaxDialogueChars {
		return extraction.ExtractOutput{}, extraction.ErrDialogueTooLong
	}

	id := uuid.NewString()
	uc.l.Infof(ctx, "extraction.Extract: id=%s user=%s source=%s dialogue_length=%d", id, sc.UserID, sc.Source, len(dialogue))

	key := cacheKey(dialogue)
	if hit, ok := uc.cacheGet(key); ok {
		uc.l.Debugf(ctx, "extraction.Extract: id=%s cache hit", id)
		return extraction.ExtractOutput{
			ID:       id,
			Items:    cloneItems(hit.items),
			Stage:    hit.stage,
			Provider: hit.provider,
			Model:    hit.model,
			Cached:   true,
		}, nil
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    []llmprovider.Message{llmprovider.UserText(actionitem.BuildPrompt(dialogue))},
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
		JSONMode:    uc.cfg.JSONMode,
	})
	if err != nil {
		uc.l.Errorf(ctx, "extraction.Extract: id=%s llm failed: %v", id, err)
		return extraction.ExtractOutput{}, fmt.Errorf("%w: %v", extraction.ErrLLMUnavailable, err)
	}

	raw := resp.Text()
	uc.l.Debugf(ctx, "extraction.Extract: id=%s raw output: %s", id, raw)

	items, stage := uc.recoverItems(raw)
	if stage == "" {
		uc.l.Warnf(ctx, "extraction.Extract: id=%s model output is not valid JSON", id)
	} else if len(items) == 0 {
		uc.l.Infof(ctx, "extraction.Extract: id=%s no valid action items after schema enforcement", id)
	}

	// Only recovered results are cached; a bad generation is retried next time.
	if stage != "" {
		uc.cachePut(key, cachedExtraction{
			items:    cloneItems(items),
			stage:    stage,
			provider: resp.ProviderName,
			model:    resp.ModelName,
		})
	}

	uc.l.Infof(ctx, "extraction.Extract: id=%s items=%d stage=%s provider=%s", id, len(items), stage, resp.ProviderName)

	return extraction.ExtractOutput{
		ID:       id,
		Items:    items,
		Stage:    stage,
		Provider: resp.ProviderName,
		Model:    resp.ModelName,
	}, nil
}

// recoverItems returns the enforced items and the name of the recovery stage
// that succeeded, or an empty stage when nothing was recovered.
func (uc *implUseCase) recoverItems(raw string) ([]actionitem.ActionItem, string) {
	res, ok := uc.recoverer.Recover(raw)
	if !ok {
		return []actionitem.ActionItem{}, ""
	}
	return actionitem.Enforce(res.Candidate), res.Stage.String()
}
