package usecase

import (
	"context"

	"action-item-extractor/internal/extraction"
	"action-item-extractor/pkg/actionitem"
)

var sampleDialogues = []extraction.Example{
	{
		Title: "Project sync",
		Dialogue: `Alex: Hey team, quick sync for the project.
Ben: Go ahead.
Alex: I've finished the initial draft of the report. Ben, can you review it by EOD tomorrow?
Chloe: What about the presentation slides?
Alex: Good point. Chloe, you're on slides. Let's aim to have a first draft by Friday. I'll handle the data visualization part.
Ben: Got it, I'll review the report.
Chloe: Okay, slides by Friday it is.`,
	},
	{
		Title: "Engineering standup",
		Dialogue: `PM: Okay, standup time. Engineering updates?
Dev1: I'll push the fix for the login bug today.
Dev2: I need to schedule a meeting with the design team to finalize the new dashboard mockups.
PM: Great. Dev1, let us know when the fix is live. Dev2, please set up that meeting for this week.`,
	},
}

func (uc *implUseCase) Prompt(ctx context.Context, input extraction.PromptInput) extraction.PromptOutput {
	return extraction.PromptOutput{Prompt: actionitem.BuildPrompt(input.Dialogue)}
}

func (uc *implUseCase) Examples(ctx context.Context) []extraction.Example {
	out := make([]extraction.Example, len(sampleDialogues))
	copy(out, sampleDialogues)
	return out
}
